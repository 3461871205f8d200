package motion

import (
	"errors"
	"fmt"
)

// Domain errors for timeline construction.
var (
	// ErrPropMismatch indicates from/to sets that name different properties.
	ErrPropMismatch = errors.New("motion: from and to name different property sets")

	// ErrEmptyProps indicates a step with nothing to animate.
	ErrEmptyProps = errors.New("motion: step animates no properties")

	// ErrUnknownProp indicates a property name outside AllProps.
	ErrUnknownProp = errors.New("motion: unknown property")

	// ErrNegativeDuration indicates a step duration below zero.
	ErrNegativeDuration = errors.New("motion: negative duration")

	// ErrNegativeDelay indicates a step delay below zero.
	ErrNegativeDelay = errors.New("motion: negative delay")
)

// StepError wraps a validation error with the step that caused it.
type StepError struct {
	Step    int
	Label   string
	Wrapped error
}

func (e *StepError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("step %d (%s): %v", e.Step, e.Label, e.Wrapped)
	}
	return fmt.Sprintf("step %d: %v", e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
