package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptSaveFile matches any *CorruptFileError.
	ErrCorruptSaveFile = errors.New("corrupt save file")
	// ErrStorageWrite matches any *WriteError.
	ErrStorageWrite = errors.New("failed to write save file")
)

// CorruptFileError reports a save file line that could not be read back.
type CorruptFileError struct {
	Path string
	Line int
	Err  error
}

// Error implements the error interface.
func (e *CorruptFileError) Error() string {
	return fmt.Sprintf("corrupt save file %s (line %d): %v", e.Path, e.Line, e.Err)
}

// Unwrap returns the record error.
func (e *CorruptFileError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrCorruptSaveFile.
func (e *CorruptFileError) Is(target error) bool {
	return target == ErrCorruptSaveFile
}

// WriteError reports a failed save. The in-memory list is unaffected.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write save file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrStorageWrite.
func (e *WriteError) Is(target error) bool {
	return target == ErrStorageWrite
}
