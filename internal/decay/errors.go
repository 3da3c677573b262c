package decay

import (
	"errors"
	"fmt"
)

// Input validation errors.
var (
	// ErrInvalidDays indicates a day count outside 1..MaxDays.
	ErrInvalidDays = fmt.Errorf("decay: days must be between 1 and %d", MaxDays)

	// ErrInvalidFibers indicates a non-positive or non-finite initial fiber count.
	ErrInvalidFibers = errors.New("decay: initial fibers must be a positive number")
)

// ValidationError wraps a validation sentinel with the offending input.
type ValidationError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Wrapped)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}
