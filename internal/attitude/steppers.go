package attitude

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/rn"
	"github.com/san-kum/liesim/internal/so3"
)

// Stepper advances a pose by dt under the twist profile starting at t.
type Stepper interface {
	Name() string
	Step(p Pose, profile TwistProfile, t, dt float64) (Pose, error)
}

// LieEuler holds the twist at t over the step:
// R ← R·exp(ω dt), p ← p + R·v dt.
type LieEuler struct{}

func (LieEuler) Name() string { return "lie_euler" }

func (LieEuler) Step(p Pose, profile TwistProfile, t, dt float64) (Pose, error) {
	return advance(p, profile.Twist(t), dt)
}

// LieMidpoint holds the twist at t + dt/2 over the step. The body rates
// do not depend on the pose, so the attitude is second order. Position
// still uses the attitude at the start of the step.
type LieMidpoint struct{}

func (LieMidpoint) Name() string { return "lie_midpoint" }

func (LieMidpoint) Step(p Pose, profile TwistProfile, t, dt float64) (Pose, error) {
	return advance(p, profile.Twist(t+dt/2), dt)
}

func advance(p Pose, tw Twist, dt float64) (Pose, error) {
	v := velocityWorld(p, tw)
	rot, err := lie.Retract(p.Rotation, tw.Omega.Scale(dt))
	if err != nil {
		return Pose{}, err
	}
	pos, err := lie.Retract(p.Position, rn.Algebra3().Element(v.X*dt, v.Y*dt, v.Z*dt))
	if err != nil {
		return Pose{}, err
	}
	return Pose{Rotation: rot, Position: pos}, nil
}

// Additive is explicit Euler on q̇ = ½·q⊗(ω, 0) in R4 with no
// renormalization.
type Additive struct{}

func (Additive) Name() string { return "additive" }

func (Additive) Step(p Pose, profile TwistProfile, t, dt float64) (Pose, error) {
	grp := so3.StdQuat()
	tw := profile.Twist(t)
	w := so3.StdAlgebra().Vec(tw.Omega)

	q := grp.Number(p.Rotation)
	qdot := quat.Scale(0.5, quat.Mul(q, quat.Number{Imag: w.X, Jmag: w.Y, Kmag: w.Z}))
	rot := grp.FromNumber(quat.Add(q, quat.Scale(dt, qdot)))

	v := velocityWorld(p, tw)
	pos, err := rn.Group3().Product(p.Position, rn.Group3().Element(v.X*dt, v.Y*dt, v.Z*dt))
	if err != nil {
		return Pose{}, err
	}
	return Pose{Rotation: rot, Position: pos}, nil
}

func velocityWorld(p Pose, tw Twist) r3.Vec {
	body := r3.Vec{X: tw.Velocity.At(0), Y: tw.Velocity.At(1), Z: tw.Velocity.At(2)}
	return so3.StdQuat().Rotate(p.Rotation, body)
}
