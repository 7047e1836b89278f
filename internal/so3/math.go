package so3

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
)

// Quaternion coordinates are stored as (x, y, z, w) with w the scalar part.

func toNumber(p []float64) quat.Number {
	return quat.Number{Real: p[3], Imag: p[0], Jmag: p[1], Kmag: p[2]}
}

func fromNumber(q quat.Number) []float64 {
	return []float64{q.Imag, q.Jmag, q.Kmag, q.Real}
}

// expQuat maps a rotation vector to a unit quaternion. Below Epsilon the
// ratio sin(θ/2)/θ is replaced by its Taylor expansion so θ = 0 lands on
// the identity without dividing by zero.
func expQuat(v r3.Vec) quat.Number {
	theta := r3.Norm(v)
	var s float64
	if theta < lie.Epsilon {
		s = 0.5 - theta*theta/48
	} else {
		s = math.Sin(theta/2) / theta
	}
	return quat.Number{Real: math.Cos(theta / 2), Imag: s * v.X, Jmag: s * v.Y, Kmag: s * v.Z}
}

// logQuat is the inverse of expQuat on rotation angles in [0, 2π).
// c = ‖v‖ is sin(θ/2) for a unit quaternion; near zero the first order
// expansion 2v is used rather than returning zero; it is still exactly
// zero at the identity.
func logQuat(q quat.Number) r3.Vec {
	v := r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	c := r3.Norm(v)
	if c <= lie.Epsilon {
		return r3.Scale(2, v)
	}
	theta := 2 * math.Atan2(c, q.Real)
	return r3.Scale(theta/c, v)
}

// quatMatrix returns the row-major rotation matrix of a unit quaternion.
func quatMatrix(q quat.Number) []float64 {
	a, b, c, d := q.Real, q.Imag, q.Jmag, q.Kmag
	aa, ab, ac, ad := a*a, a*b, a*c, a*d
	bb, bc, bd := b*b, b*c, b*d
	cc, cd := c*c, c*d
	dd := d * d
	return []float64{
		aa + bb - cc - dd, 2 * (bc - ad), 2 * (bd + ac),
		2 * (bc + ad), aa + cc - bb - dd, 2 * (cd - ab),
		2 * (bd - ac), 2 * (cd + ab), aa + dd - bb - cc,
	}
}

// matrixQuat recovers a unit quaternion from a row-major rotation matrix
// using Shepperd's method. The result has a non-negative scalar part.
func matrixQuat(m []float64) quat.Number {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]

	var q quat.Number
	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1)
		q = quat.Number{Real: s / 4, Imag: (m21 - m12) / s, Jmag: (m02 - m20) / s, Kmag: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{Real: (m21 - m12) / s, Imag: s / 4, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: s / 4, Kmag: (m12 + m21) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: s / 4}
	}
	return canonical(q)
}

func canonical(q quat.Number) quat.Number {
	if q.Real < 0 {
		return quat.Scale(-1, q)
	}
	return q
}

// eulerQuat converts body 3-2-1 angles (yaw ψ, pitch θ, roll φ) into the
// quaternion qz(ψ)·qy(θ)·qx(φ).
func eulerQuat(psi, theta, phi float64) quat.Number {
	sy, cy := math.Sincos(psi / 2)
	sp, cp := math.Sincos(theta / 2)
	sr, cr := math.Sincos(phi / 2)
	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// quatEuler returns (ψ, θ, φ). At gimbal lock (θ = ±π/2) roll and yaw are
// not separable; the split chosen by atan2 is returned.
func quatEuler(q quat.Number) (psi, theta, phi float64) {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	phi = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	theta = math.Asin(clamp(2*(w*y-z*x), -1, 1))
	psi = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return psi, theta, phi
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
