package types

import (
	"fmt"
	"net/http"
)

// =============================================================================
// ERROR TAXONOMY
// =============================================================================

// FileError reports a failure to open, read, or persist a spreadsheet.
type FileError struct {
	// Op is the operation that failed: "open", "read", "write" or "save".
	Op string

	// Path is the file the operation was performed on.
	Path string

	Err error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// LookupError reports a failed call to an external lookup service: a network
// failure, a non-success status, or a body that could not be decoded.
type LookupError struct {
	// Service names the remote service ("ifsc" or "geocode").
	Service string

	// Subject is what was being looked up (an IFSC or a region name).
	Subject string

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	Err error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s lookup %q: %s: %v", e.Service, e.Subject, http.StatusText(e.StatusCode), e.Err)
	}
	return fmt.Sprintf("%s lookup %q: %v", e.Service, e.Subject, e.Err)
}

// Unwrap returns the underlying error.
func (e *LookupError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the service answered that the subject is unknown.
func (e *LookupError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
