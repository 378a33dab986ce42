package udf

import (
	"errors"
	"fmt"
)

var (
	// ErrArity matches any ArityError
	ErrArity = errors.New("wrong number of arguments")
	// ErrType matches any TypeError
	ErrType = errors.New("wrong argument type")
	// ErrCoercion matches any CoercionError
	ErrCoercion = errors.New("argument coercion failed")
	// ErrNotInitialized indicates Evaluate was called before a successful Initialize
	ErrNotInitialized = errors.New("function not initialized")
	// ErrUnknownFunction indicates a registry lookup for an unregistered name
	ErrUnknownFunction = errors.New("unknown function")
)

// ArityError reports a wrong number of arguments at bind time.
type ArityError struct {
	Function string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects exactly %d argument(s), got %d", e.Function, e.Expected, e.Got)
}

// Is reports ErrArity as a match
func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// TypeError reports an argument whose type is not accepted at bind time.
type TypeError struct {
	Function string
	// Position is the zero-based index of the offending argument
	Position int
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s argument %d: a %s argument was expected but an argument of type %s was given",
		e.Function, e.Position, e.Expected, e.Actual)
}

// Is reports ErrType as a match
func (e *TypeError) Is(target error) bool {
	return target == ErrType
}

// CoercionError reports a runtime value that could not be converted during evaluation.
type CoercionError struct {
	Function string
	Cause    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Function, e.Cause)
}

// Unwrap returns the underlying error
func (e *CoercionError) Unwrap() error {
	return e.Cause
}

// Is reports ErrCoercion as a match
func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}
