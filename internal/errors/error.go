package errors

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryStore      Category = "store"
	CategoryUpload     Category = "upload"
	CategoryAuth       Category = "auth"
	CategoryRender     Category = "render"
	CategoryValidation Category = "validation"
	CategoryCLI        Category = "cli"
)

// Location points at a line in a file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// CafeError is a structured error with a code, hints and an optional
// location.
type CafeError struct {
	// Code is a unique error identifier (e.g., "C101").
	Code string

	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	Location *Location

	// Context holds the lines around Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *CafeError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CafeError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file location and reads the surrounding lines.
func (e *CafeError) WithLocation(file string, line, column int) *CafeError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *CafeError) WithSuggestion(s string) *CafeError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *CafeError) WithDetail(d string) *CafeError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *CafeError) Wrap(err error) *CafeError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}
	return lines
}

// New creates a CafeError from a registered error code.
func New(code string) *CafeError {
	template, ok := registry[code]
	if !ok {
		return &CafeError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &CafeError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a CafeError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *CafeError {
	return &CafeError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err in a CafeError with the given code, returning err
// unchanged when it already is one.
func FromError(err error, code string) *CafeError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CafeError); ok {
		return ce
	}
	return New(code).Wrap(err)
}

type jsonError struct {
	Code       string    `json:"code,omitempty"`
	Category   Category  `json:"category,omitempty"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// FormatJSON returns the error as a JSON object.
func (e *CafeError) FormatJSON() string {
	b, err := json.Marshal(jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Location:   e.Location,
		Suggestion: e.Suggestion,
	})
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(b)
}
