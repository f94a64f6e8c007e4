package types

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"testing"
)

func TestFileErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("pipeline: %w", &FileError{Op: "open", Path: "sample.xlsx", Err: fs.ErrNotExist})

	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("errors.As did not find *FileError in %v", err)
	}
	if fe.Op != "open" {
		t.Errorf("Op = %q, want %q", fe.Op, "open")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false")
	}
}

func TestLookupErrorMessage(t *testing.T) {
	tests := []struct {
		err      *LookupError
		contains string
		notFound bool
	}{
		{&LookupError{Service: "ifsc", Subject: "SBIN0000001", StatusCode: http.StatusNotFound, Err: errors.New("unexpected status")}, "Not Found", true},
		{&LookupError{Service: "geocode", Subject: "mumbai", Err: errors.New("connection refused")}, "connection refused", false},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); !strings.Contains(got, tt.contains) {
			t.Errorf("Error() = %q, want it to contain %q", got, tt.contains)
		}
		if got := tt.err.NotFound(); got != tt.notFound {
			t.Errorf("NotFound() = %v, want %v", got, tt.notFound)
		}
	}
}
