// Package errors provides structured, actionable errors for the cafe
// server and CLI.
//
// A CafeError carries a code from the registry, a category, a short
// message, an optional detail and suggestion, and optionally the file and
// line it refers to (a cafe.yaml key, say). Format renders it for a
// terminal, FormatJSON for API responses.
//
// # Usage
//
//	err := errors.New("C101").
//	    WithLocation("cafe.yaml", 4, 3).
//	    WithSuggestion("Use host:port, for example :8080")
//
//	fmt.Println(err.Format())
package errors
