package attitude

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/rn"
	"github.com/san-kum/liesim/internal/so3"
)

// Pose is an attitude in SO(3) (quaternion form) with a position in R3.
type Pose struct {
	Rotation lie.GroupElement
	Position lie.GroupElement
}

// Identity returns the pose at the origin with no rotation.
func Identity() Pose {
	return Pose{Rotation: so3.StdQuat().Identity(), Position: rn.Group3().Identity()}
}

// NewPose builds a pose from a rotation vector and a position.
func NewPose(rotvec, pos r3.Vec) Pose {
	return Pose{
		Rotation: so3.StdQuat().Exp(so3.StdAlgebra().FromVec(rotvec)),
		Position: rn.Group3().Element(pos.X, pos.Y, pos.Z),
	}
}

// Quaternion returns the attitude as a gonum quaternion.
func (p Pose) Quaternion() quat.Number {
	return so3.StdQuat().Number(p.Rotation)
}

// Translation returns the position as a gonum vector.
func (p Pose) Translation() r3.Vec {
	return r3.Vec{X: p.Position.At(0), Y: p.Position.At(1), Z: p.Position.At(2)}
}

// Angle is the rotation angle of the attitude in [0, 2π).
func (p Pose) Angle() float64 {
	x, err := so3.StdQuat().Log(p.Rotation)
	if err != nil {
		return math.NaN()
	}
	return x.Norm()
}

// Homogeneous returns the 4×4 transform [R p; 0 1].
func (p Pose) Homogeneous() *mat.Dense {
	r := so3.StdQuat().ToMatrix(p.Rotation)
	m := rn.Group3().ToMatrix(p.Position)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, r.At(i, j))
		}
	}
	return m
}

// Twist is a body-frame angular and linear velocity.
type Twist struct {
	Omega    lie.AlgebraElement
	Velocity lie.AlgebraElement
}

// NewTwist builds a twist from body rates and body velocity.
func NewTwist(omega, vel r3.Vec) Twist {
	return Twist{
		Omega:    so3.StdAlgebra().FromVec(omega),
		Velocity: rn.Algebra3().Element(vel.X, vel.Y, vel.Z),
	}
}

// Add returns the componentwise sum of two twists.
func (tw Twist) Add(o Twist) Twist {
	return Twist{Omega: tw.Omega.Add(o.Omega), Velocity: tw.Velocity.Add(o.Velocity)}
}

// Scale multiplies both components by s.
func (tw Twist) Scale(s float64) Twist {
	return Twist{Omega: tw.Omega.Scale(s), Velocity: tw.Velocity.Scale(s)}
}

// TwistProfile supplies the twist acting at time t.
type TwistProfile interface {
	Twist(t float64) Twist
}

// ConstantTwist applies the same twist at every instant.
type ConstantTwist struct {
	Value Twist
}

func (c ConstantTwist) Twist(float64) Twist { return c.Value }

// OscillatingTwist is Base + Amplitude·sin(2π·Frequency·t).
type OscillatingTwist struct {
	Base      Twist
	Amplitude Twist
	Frequency float64
}

func (o OscillatingTwist) Twist(t float64) Twist {
	return o.Base.Add(o.Amplitude.Scale(math.Sin(2 * math.Pi * o.Frequency * t)))
}
