// =============================================================================
// IFSC Enricher - File Manager Utility
// =============================================================================
//
// This module provides the small set of file operations the spreadsheet
// gateway needs:
//   - Existence checks for the input workbook
//   - Directory creation for the output path
//   - Replace-on-success writes, so a failed save never leaves a truncated
//     output file behind
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the directory that will contain path.
//
// RETURNS:
//   - An error if the directory cannot be created.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// FILE WRITING
// =============================================================================

// WriteReplacing writes a file through a temporary sibling and renames it
// over path once write has succeeded.
//
// PARAMETERS:
//   - path:  The final destination.
//   - write: Called with the temporary path; it must create the file there.
//
// RETURNS:
//   - An error from write, or from moving the temporary file into place.
//     The temporary file is removed on any failure.
func WriteReplacing(path string, write func(tmpPath string) error) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := write(tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// CreateTemp makes the file owner-only; give it the mode of the file it
	// replaces, or the usual 0644 for a new one.
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}

	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a regular file exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
