package storage

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every scenario parameter failure.
var ErrInvalidParameter = errors.New("invalid scenario parameter")

// ParameterError identifies the program and parameter that violated a
// precondition.
type ParameterError struct {
	Program   string
	Parameter string
	Value     any
	Expected  string
}

func (e *ParameterError) Error() string {
	name := e.Program
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("HPSO %s: %s: %s = %v, expected %s",
		name, ErrInvalidParameter, e.Parameter, e.Value, e.Expected)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
