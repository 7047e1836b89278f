package so3

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/liesim/internal/lie"
)

// DcmGroup is SO(3) parameterized by a direction-cosine matrix, stored
// row-major. Elements are assumed orthonormal with determinant +1.
type DcmGroup struct {
	algebra *Algebra
}

func NewDcmGroup(a *Algebra) *DcmGroup {
	return &DcmGroup{algebra: a}
}

func (g *DcmGroup) Name() string                  { return "SO3Dcm" }
func (g *DcmGroup) Algebra() lie.Algebra          { return g.algebra }
func (g *DcmGroup) Dim() int                      { return 3 }
func (g *DcmGroup) ParamLen() int                 { return 9 }
func (g *DcmGroup) MatrixShape() (rows, cols int) { return 3, 3 }

// FromMatrix copies a 3×3 rotation matrix into a group element.
func (g *DcmGroup) FromMatrix(m mat.Matrix) lie.GroupElement {
	r, c := m.Dims()
	lie.MustShape(g.Name()+".element", 3, 3, r, c)
	p := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p = append(p, m.At(i, j))
		}
	}
	return lie.NewGroupElement(g, p)
}

func (g *DcmGroup) Identity() lie.GroupElement {
	return lie.NewGroupElement(g, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

// Product is matrix multiplication g·h.
func (g *DcmGroup) Product(a, b lie.GroupElement) (lie.GroupElement, error) {
	lie.MustOwnGroup(g.Name()+".product", g, a, b)
	var m mat.Dense
	m.Mul(dense(a), dense(b))
	return g.FromMatrix(&m), nil
}

// Inverse is the transpose.
func (g *DcmGroup) Inverse(a lie.GroupElement) (lie.GroupElement, error) {
	lie.MustOwnGroup(g.Name()+".inverse", g, a)
	return g.FromMatrix(dense(a).T()), nil
}

// Adjoint of a rotation matrix acting on rotation vectors is the matrix itself.
func (g *DcmGroup) Adjoint(a lie.GroupElement) (*mat.Dense, error) {
	return g.ToMatrix(a), nil
}

func (g *DcmGroup) Exp(x lie.AlgebraElement) lie.GroupElement {
	lie.MustOwnAlgebra(g.Name()+".exp", g.algebra, x)
	return lie.NewGroupElement(g, quatMatrix(expQuat(vec(x))))
}

// Log returns the rotation vector with angle in [0, π].
func (g *DcmGroup) Log(a lie.GroupElement) (lie.AlgebraElement, error) {
	lie.MustOwnGroup(g.Name()+".log", g, a)
	return g.algebra.FromVec(logQuat(matrixQuat(a.Param()))), nil
}

func (g *DcmGroup) ToMatrix(a lie.GroupElement) *mat.Dense {
	lie.MustOwnGroup(g.Name()+".to_matrix", g, a)
	return dense(a)
}

func dense(a lie.GroupElement) *mat.Dense {
	return mat.NewDense(3, 3, a.Param())
}
