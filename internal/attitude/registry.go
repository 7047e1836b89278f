package attitude

import (
	"fmt"
	"sort"
)

type Registry struct {
	steppers map[string]func() Stepper
}

func NewRegistry() *Registry {
	r := &Registry{steppers: make(map[string]func() Stepper)}

	r.steppers["lie_euler"] = func() Stepper { return LieEuler{} }
	r.steppers["lie_midpoint"] = func() Stepper { return LieMidpoint{} }
	r.steppers["additive"] = func() Stepper { return Additive{} }

	return r
}

func (r *Registry) GetStepper(name string) (Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStepper, name)
	}
	return fn(), nil
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns a fresh set of the standard run metrics.
func (r *Registry) DefaultMetrics() []Metric {
	return []Metric{NewNormDrift(), NewRotationAngle(), NewPathLength()}
}
