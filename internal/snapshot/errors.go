package snapshot

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates a snapshot document could not be parsed or does not
// match the snapshot schema.
var ErrMalformed = errors.New("malformed snapshot")

// ErrEmptyQuery is returned by Query for a blank expression.
var ErrEmptyQuery = errors.New("empty jsonpath expression")

// FormatError reports a malformed snapshot document.
type FormatError struct {
	Path string // file path, or empty when decoding from a reader
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Path, ErrMalformed, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrMalformed, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is matches ErrMalformed.
func (e *FormatError) Is(target error) bool {
	return target == ErrMalformed
}
