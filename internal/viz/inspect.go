package viz

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/so3"
)

// Recovered is the rotation vector one parameterization gives back after
// exp followed by log.
type Recovered struct {
	Group  string
	RotVec r3.Vec
}

// Readout is one rotation seen through every SO(3) parameterization.
type Readout struct {
	RotVec     r3.Vec
	Angle      float64
	Quaternion quat.Number
	Dcm        *mat.Dense
	Euler      [3]float64 // psi, theta, phi
	RoundTrip  []Recovered
	Consistent bool
}

// Inspect exponentiates rotvec in each parameterization and reads the
// result back.
func Inspect(rotvec r3.Vec) (Readout, error) {
	x := so3.StdAlgebra().FromVec(rotvec)
	q := so3.StdQuat().Exp(x)

	dcm, err := lie.Convert(so3.StdDcm(), q)
	if err != nil {
		return Readout{}, err
	}
	euler, err := lie.Convert(so3.StdEulerB321(), q)
	if err != nil {
		return Readout{}, err
	}

	out := Readout{
		RotVec:     rotvec,
		Angle:      r3.Norm(rotvec),
		Quaternion: so3.StdQuat().Number(q),
		Dcm:        so3.StdDcm().ToMatrix(dcm),
		Euler:      [3]float64{euler.At(0), euler.At(1), euler.At(2)},
		Consistent: true,
	}

	for _, h := range []lie.GroupElement{q, dcm, euler} {
		back, err := h.Group().Log(h)
		if err != nil {
			return Readout{}, err
		}
		out.RoundTrip = append(out.RoundTrip, Recovered{Group: h.Group().Name(), RotVec: so3.StdAlgebra().Vec(back)})
		if !mat.EqualApprox(h.Group().ToMatrix(h), out.Dcm, 1e-9) {
			out.Consistent = false
		}
	}
	return out, nil
}
