package attitude

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a non-positive timestep or duration.
	ErrInvalidConfig = errors.New("attitude: invalid simulation config")

	// ErrUnknownStepper indicates a stepper name missing from the registry.
	ErrUnknownStepper = errors.New("attitude: unknown stepper")
)

// StepError wraps a failure with the step at which it happened.
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
