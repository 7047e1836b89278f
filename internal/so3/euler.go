package so3

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/liesim/internal/lie"
)

// EulerB321Group is SO(3) parameterized by body 3-2-1 Euler angles
// (yaw ψ, pitch θ, roll φ).
//
// Euler angles have no closed-form composition, so Product and Adjoint
// report lie.ErrUnsupported; compose through another parameterization with
// lie.Compose.
type EulerB321Group struct {
	algebra *Algebra
}

func NewEulerB321Group(a *Algebra) *EulerB321Group {
	return &EulerB321Group{algebra: a}
}

func (g *EulerB321Group) Name() string                  { return "SO3EulerB321" }
func (g *EulerB321Group) Algebra() lie.Algebra          { return g.algebra }
func (g *EulerB321Group) Dim() int                      { return 3 }
func (g *EulerB321Group) ParamLen() int                 { return 3 }
func (g *EulerB321Group) MatrixShape() (rows, cols int) { return 3, 3 }

// Element builds the attitude with the given yaw, pitch and roll.
func (g *EulerB321Group) Element(psi, theta, phi float64) lie.GroupElement {
	return lie.NewGroupElement(g, []float64{psi, theta, phi})
}

func (g *EulerB321Group) fromNumber(q quat.Number) lie.GroupElement {
	return g.Element(quatEuler(q))
}

func (g *EulerB321Group) number(a lie.GroupElement) quat.Number {
	return canonical(eulerQuat(a.At(0), a.At(1), a.At(2)))
}

func (g *EulerB321Group) Identity() lie.GroupElement {
	return g.Element(0, 0, 0)
}

func (g *EulerB321Group) Product(a, b lie.GroupElement) (lie.GroupElement, error) {
	lie.MustOwnGroup(g.Name()+".product", g, a, b)
	return lie.GroupElement{}, lie.Unsupported(g, "product")
}

func (g *EulerB321Group) Inverse(a lie.GroupElement) (lie.GroupElement, error) {
	lie.MustOwnGroup(g.Name()+".inverse", g, a)
	return g.fromNumber(quat.Conj(g.number(a))), nil
}

func (g *EulerB321Group) Adjoint(a lie.GroupElement) (*mat.Dense, error) {
	lie.MustOwnGroup(g.Name()+".adjoint", g, a)
	return nil, lie.Unsupported(g, "adjoint")
}

func (g *EulerB321Group) Exp(x lie.AlgebraElement) lie.GroupElement {
	lie.MustOwnAlgebra(g.Name()+".exp", g.algebra, x)
	return g.fromNumber(expQuat(vec(x)))
}

// Log returns the rotation vector with angle in [0, π].
func (g *EulerB321Group) Log(a lie.GroupElement) (lie.AlgebraElement, error) {
	lie.MustOwnGroup(g.Name()+".log", g, a)
	return g.algebra.FromVec(logQuat(g.number(a))), nil
}

func (g *EulerB321Group) ToMatrix(a lie.GroupElement) *mat.Dense {
	lie.MustOwnGroup(g.Name()+".to_matrix", g, a)
	return mat.NewDense(3, 3, quatMatrix(g.number(a)))
}
