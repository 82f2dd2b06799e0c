package subject

import (
	"errors"
	"fmt"
)

// Error Variables
type SubjectError error

var (
	ErrInvalidUserJSON SubjectError = errors.New("invalid user JSON")
)

type UserJSONError struct {
	Field string
	Err   error
}

func (e *UserJSONError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("Failed to parse user attribute %s: %s", e.Field, e.Err.Error())
	} else {
		return fmt.Sprintf("Failed to parse user: %s", e.Err.Error())
	}
}

func (e *UserJSONError) Unwrap() error { return e.Err }

func (e *UserJSONError) Is(target error) bool { return target == ErrInvalidUserJSON }
