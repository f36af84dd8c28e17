package core

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound is wrapped when an aggregator references a column
	// the loaded file does not have.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidValue is wrapped when a present value cannot be interpreted,
	// such as an opening year that is not a year.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNoData is wrapped when a step needs at least one complete row.
	ErrNoData = errors.New("no complete rows")

	// ErrEncoding is wrapped by ParseError when the file is not UTF-8.
	ErrEncoding = errors.New("encoding error: file is not valid UTF-8")

	// ErrBusy is returned when every build slot stays taken for the whole
	// wait. Clients should retry after a short delay.
	ErrBusy = errors.New("too many dashboard builds in progress")
)

// FileAccessError reports a source file that is missing or unreadable.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("file access: %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError reports a malformed source file.
type ParseError struct {
	Source string
	Line   int // 0 when the error is not tied to a line
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid csv: %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("invalid csv: %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func columnError(op, column string) error {
	return fmt.Errorf("%s: %w: %q", op, ErrColumnNotFound, column)
}
