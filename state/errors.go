package state

import (
	"errors"
	"fmt"
)

// InvalidValueError indicates that a state value lies outside the valid
// range [MinValue, MaxValue].
type InvalidValueError struct {
	Err error
}

func NewInvalidValueErrorf(msg string, args ...interface{}) error {
	return InvalidValueError{Err: fmt.Errorf(msg, args...)}
}

func (e InvalidValueError) Error() string { return e.Err.Error() }
func (e InvalidValueError) Unwrap() error { return e.Err }

// IsInvalidValueError returns whether an error is InvalidValueError
func IsInvalidValueError(err error) bool {
	var e InvalidValueError
	return errors.As(err, &e)
}
