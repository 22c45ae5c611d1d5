package model

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks configuration errors detected before any time-stepping.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError names the offending parameter.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

func invalid(field, format string, args ...any) error {
	return &ParamError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
