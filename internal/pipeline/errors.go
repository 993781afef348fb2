package pipeline

import (
	"errors"
	"fmt"
)

// InputReadError reports that the input source failed (not end of input)
// while ingesting. The pipeline has already been shut down and the worker
// joined when this error is returned.
type InputReadError struct {
	// Line is the 1-based number of the line that could not be read.
	Line int

	// Err is the underlying reader error.
	Err error
}

// Error implements the error interface.
func (e *InputReadError) Error() string {
	return fmt.Sprintf("read input line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying reader error.
func (e *InputReadError) Unwrap() error {
	return e.Err
}

// IsInputReadError returns true if err is or wraps an *InputReadError.
func IsInputReadError(err error) bool {
	var re *InputReadError
	return errors.As(err, &re)
}
