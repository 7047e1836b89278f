package so3

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
)

// QuatGroup is SO(3) parameterized by unit quaternions (x, y, z, w).
//
// Unit norm is preserved by Product and Inverse up to round-off; drift is
// not corrected here.
type QuatGroup struct {
	algebra *Algebra
}

func NewQuatGroup(a *Algebra) *QuatGroup {
	return &QuatGroup{algebra: a}
}

func (g *QuatGroup) Name() string                  { return "SO3Quat" }
func (g *QuatGroup) Algebra() lie.Algebra          { return g.algebra }
func (g *QuatGroup) Dim() int                      { return 3 }
func (g *QuatGroup) ParamLen() int                 { return 4 }
func (g *QuatGroup) MatrixShape() (rows, cols int) { return 3, 3 }

// Element builds the quaternion with vector part (x, y, z) and scalar w.
func (g *QuatGroup) Element(x, y, z, w float64) lie.GroupElement {
	return lie.NewGroupElement(g, []float64{x, y, z, w})
}

// FromNumber wraps a gonum quaternion.
func (g *QuatGroup) FromNumber(q quat.Number) lie.GroupElement {
	return lie.NewGroupElement(g, fromNumber(q))
}

// Number returns h as a gonum quaternion.
func (g *QuatGroup) Number(h lie.GroupElement) quat.Number {
	lie.MustOwnGroup(g.Name()+".number", g, h)
	return toNumber(h.Param())
}

func (g *QuatGroup) Identity() lie.GroupElement {
	return g.Element(0, 0, 0, 1)
}

// Product is the Hamilton product.
func (g *QuatGroup) Product(a, b lie.GroupElement) (lie.GroupElement, error) {
	lie.MustOwnGroup(g.Name()+".product", g, a, b)
	return g.FromNumber(quat.Mul(toNumber(a.Param()), toNumber(b.Param()))), nil
}

// Inverse is the conjugate (−v, w).
func (g *QuatGroup) Inverse(a lie.GroupElement) (lie.GroupElement, error) {
	lie.MustOwnGroup(g.Name()+".inverse", g, a)
	return g.FromNumber(quat.Conj(toNumber(a.Param()))), nil
}

// Adjoint of a rotation acting on rotation vectors is the rotation matrix.
func (g *QuatGroup) Adjoint(a lie.GroupElement) (*mat.Dense, error) {
	return g.ToMatrix(a), nil
}

func (g *QuatGroup) Exp(x lie.AlgebraElement) lie.GroupElement {
	lie.MustOwnAlgebra(g.Name()+".exp", g.algebra, x)
	return g.FromNumber(expQuat(vec(x)))
}

func (g *QuatGroup) Log(a lie.GroupElement) (lie.AlgebraElement, error) {
	lie.MustOwnGroup(g.Name()+".log", g, a)
	return g.algebra.FromVec(logQuat(toNumber(a.Param()))), nil
}

func (g *QuatGroup) ToMatrix(a lie.GroupElement) *mat.Dense {
	lie.MustOwnGroup(g.Name()+".to_matrix", g, a)
	return mat.NewDense(3, 3, quatMatrix(toNumber(a.Param())))
}

// Rotate applies the rotation to v as q·v·q*.
func (g *QuatGroup) Rotate(a lie.GroupElement, v r3.Vec) r3.Vec {
	lie.MustOwnGroup(g.Name()+".rotate", g, a)
	q := toNumber(a.Param())
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// Norm returns the quaternion modulus; 1 for a valid rotation.
func (g *QuatGroup) Norm(a lie.GroupElement) float64 {
	lie.MustOwnGroup(g.Name()+".norm", g, a)
	return quat.Abs(toNumber(a.Param()))
}

// SameRotation reports whether a and b represent the same rotation within
// tol, treating q and −q as equal.
func (g *QuatGroup) SameRotation(a, b lie.GroupElement, tol float64) bool {
	lie.MustOwnGroup(g.Name()+".same_rotation", g, a, b)
	return mat.EqualApprox(g.ToMatrix(a), g.ToMatrix(b), tol)
}
