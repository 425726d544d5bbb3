package routes

import (
	"errors"
	"strings"
)

// Path errors.
var (
	ErrInvalidPath          = errors.New("invalid path")
	ErrBackslashInPath      = errors.New("path contains backslash")
	ErrNullByteInPath       = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot      = errors.New("path escapes root via ..")
)

// Canonicalize normalizes a request path: it collapses repeated slashes,
// resolves "." and "..", and drops a trailing slash except on "/". changed
// reports whether the result differs from the input, which the server
// answers with a redirect.
//
// Backslashes, NUL bytes, malformed percent escapes and ".." above the
// root are rejected.
func Canonicalize(input string) (path string, changed bool, err error) {
	if input == "" {
		return Home, true, nil
	}
	if strings.Contains(input, "\\") {
		return "", false, ErrBackslashInPath
	}
	if strings.Contains(input, "\x00") || strings.Contains(strings.ToUpper(input), "%00") {
		return "", false, ErrNullByteInPath
	}
	if strings.Contains(input, "%") && !validEscapes(input) {
		return "", false, ErrInvalidPercentEscape
	}

	var segs []string
	for _, seg := range strings.Split(input, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segs) == 0 {
				return "", false, ErrPathEscapesRoot
			}
			segs = segs[:len(segs)-1]
		default:
			segs = append(segs, seg)
		}
	}
	path = "/" + strings.Join(segs, "/")
	return path, path != input, nil
}

// SafeRedirect validates a post-login redirect target. Only local absolute
// paths are allowed; anything else becomes fallback.
func SafeRedirect(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return fallback
	}
	p, query, _ := strings.Cut(target, "?")
	canon, _, err := Canonicalize(p)
	if err != nil {
		return fallback
	}
	if query != "" {
		return canon + "?" + query
	}
	return canon
}

func validEscapes(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return false
		}
		i += 2
	}
	return true
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
