package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by a Reader when the target path does not exist.
// It is an expected outcome, not a failure.
var ErrNotFound = errors.New("file not found")

// DecodeError is returned when a file's contents are not valid UTF-8.
type DecodeError struct {
	Path   string
	Offset int // byte offset of the first invalid sequence
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s at byte %d: %v", e.Path, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ReadError is returned when an existing path cannot be read as a file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError is returned when cleaned contents cannot be written back.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
