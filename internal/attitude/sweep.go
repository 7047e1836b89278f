package attitude

import (
	"context"
	"fmt"
	"math"
)

// SweepPoint is the outcome of one timestep in a sweep.
type SweepPoint struct {
	Dt        float64
	Steps     int
	Gap       float64 // final attitude angle away from the reference
	NormDrift float64
	Order     float64 // log2 of the gap ratio to the previous point, NaN for the first
}

// SweepDt runs the scenario once per timestep and compares each final
// attitude against ref. With dts halving from one point to the next, Order
// estimates the stepper's convergence order.
func SweepDt(ctx context.Context, st Stepper, profile TwistProfile, p0 Pose, duration float64, dts []float64, ref Pose) ([]SweepPoint, error) {
	out := make([]SweepPoint, 0, len(dts))

	for i, dt := range dts {
		sim := New(st, profile)
		drift := NewNormDrift()
		sim.AddMetric(drift)

		res, err := sim.Run(ctx, p0, Config{Dt: dt, Duration: duration})
		if err != nil {
			return out, fmt.Errorf("dt %g: %w", dt, err)
		}
		gap, err := AttitudeGap(ref, res.Poses[len(res.Poses)-1])
		if err != nil {
			return out, fmt.Errorf("dt %g: %w", dt, err)
		}

		pt := SweepPoint{Dt: dt, Steps: res.StepsTaken, Gap: gap, NormDrift: drift.Value(), Order: math.NaN()}
		if i > 0 && gap > 0 && out[i-1].Gap > 0 {
			pt.Order = math.Log2(out[i-1].Gap/gap) / math.Log2(out[i-1].Dt/dt)
		}
		out = append(out, pt)
	}

	return out, nil
}

// Reference integrates the scenario with the midpoint stepper at dt, for use
// as the target of SweepDt.
func Reference(ctx context.Context, profile TwistProfile, p0 Pose, duration, dt float64) (Pose, error) {
	res, err := New(LieMidpoint{}, profile).Run(ctx, p0, Config{Dt: dt, Duration: duration})
	if err != nil {
		return Pose{}, err
	}
	return res.Poses[len(res.Poses)-1], nil
}
