package ode

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidStepSize indicates a zero or negative step size.
	ErrInvalidStepSize = errors.New("ode: step size must be positive")

	// ErrDimensionMismatch indicates a derivative vector whose length
	// differs from the state vector.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch between state and derivative")

	// ErrEmptyState indicates an initial state with no components.
	ErrEmptyState = errors.New("ode: initial state is empty")

	// ErrInvalidState indicates a state containing NaN or Inf.
	ErrInvalidState = errors.New("ode: invalid state (NaN or Inf detected)")
)

// StepError wraps an error with the step at which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
