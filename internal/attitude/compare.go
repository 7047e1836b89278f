package attitude

import (
	"context"
	"sync"
	"time"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/so3"
)

// Comparison is one stepper's run of a shared scenario.
type Comparison struct {
	Stepper string
	Result  *Result
	Elapsed time.Duration
	Err     error
}

// Compare runs the same scenario under every stepper concurrently. Each run
// gets its own metrics from newMetrics. Failures are reported per run and
// do not cancel the others.
func Compare(ctx context.Context, steppers []Stepper, profile TwistProfile, p0 Pose, cfg Config, newMetrics func() []Metric) []Comparison {
	out := make([]Comparison, len(steppers))

	var wg sync.WaitGroup
	for i, st := range steppers {
		wg.Add(1)
		go func(idx int, st Stepper) {
			defer wg.Done()

			sim := New(st, profile)
			for _, m := range newMetrics() {
				sim.AddMetric(m)
			}

			start := time.Now()
			res, err := sim.Run(ctx, p0, cfg)
			out[idx] = Comparison{Stepper: st.Name(), Result: res, Elapsed: time.Since(start), Err: err}
		}(i, st)
	}
	wg.Wait()

	return out
}

// AttitudeGap is the angle, in [0, π], of the rotation taking a's attitude
// to b's.
func AttitudeGap(a, b Pose) (float64, error) {
	ra, err := lie.Convert(so3.StdDcm(), a.Rotation)
	if err != nil {
		return 0, err
	}
	rb, err := lie.Convert(so3.StdDcm(), b.Rotation)
	if err != nil {
		return 0, err
	}
	d, err := lie.Difference(rb, ra)
	if err != nil {
		return 0, err
	}
	return d.Norm(), nil
}
