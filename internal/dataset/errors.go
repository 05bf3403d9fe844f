package dataset

import (
	"errors"
	"fmt"
)

// ErrNoHeader is returned when the input has no header record.
var ErrNoHeader = errors.New("input has no header line")

// ReadError reports an input file that could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError reports a data row whose field count differs from the header.
// It is only produced when arity validation is enabled.
type ParseError struct {
	Line int
	Got  int
	Want int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, e.Want, e.Got)
}
