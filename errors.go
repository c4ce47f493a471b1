package planetarium

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInterrupted is returned by an animation that was stopped by its quit
	// channel before the step or time budget ran out
	ErrInterrupted = errors.New("animation interrupted")
)

// ValidationError is returned when the parameters of an operation are out of
// range.  Operations that return it have not sent anything.
type ValidationError struct {
	Op  string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(op string, err error) *ValidationError {
	return &ValidationError{Op: op, Err: err}
}

// IsValidation reports whether err, or the error it wraps, is a ValidationError
func IsValidation(err error) bool {
	_, isValidation := errors.Cause(err).(*ValidationError)
	return isValidation
}
