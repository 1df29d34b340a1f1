package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRepository is returned when git mode is requested outside a repository.
	ErrNotRepository = errors.New("not a git repository (or any of the parent directories)")

	// ErrUnsupported is returned when git mode is requested without recursion.
	ErrUnsupported = errors.New("git mode does not support non-recursive processing")
)

// PreconditionError marks an invalid mode combination or missing repository.
// It is always fatal and raised before any file is touched.
type PreconditionError struct {
	Err error
}

func (e *PreconditionError) Error() string {
	return e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// DiscoveryError reports that a file lister could not produce its listing.
type DiscoveryError struct {
	Lister string
	Err    error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("failed to list files (%s): %v", e.Lister, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// FileError is a recoverable failure on a single file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
