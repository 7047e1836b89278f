package lie

import "gonum.org/v1/gonum/mat"

// Epsilon is the threshold below which guarded branches switch to their
// limiting formula.
const Epsilon = 1e-7

// Algebra is a vector space of dimension Dim equipped with a bracket and an
// isomorphism to a square matrix space of MatrixShape.
//
// Implementations must be pointer types with at least one field so that
// distinct instances never compare equal.
type Algebra interface {
	Name() string
	Dim() int
	MatrixShape() (rows, cols int)

	Bracket(x, y AlgebraElement) AlgebraElement
	Add(x, y AlgebraElement) AlgebraElement
	Scale(s float64, x AlgebraElement) AlgebraElement
	// Adjoint returns the Dim×Dim matrix of ad_x.
	Adjoint(x AlgebraElement) *mat.Dense
	// Wedge embeds x into the matrix representation.
	Wedge(x AlgebraElement) *mat.Dense
	// Vee is the inverse of Wedge.
	Vee(m mat.Matrix) AlgebraElement
}

// Group is a Lie group whose tangent space at the identity is Algebra().
//
// ParamLen is the length of the group's own coordinate vector, which may
// differ from Dim (4 for a quaternion, 9 for a rotation matrix).
type Group interface {
	Name() string
	Algebra() Algebra
	Dim() int
	ParamLen() int
	MatrixShape() (rows, cols int)

	Identity() GroupElement
	Product(g, h GroupElement) (GroupElement, error)
	Inverse(g GroupElement) (GroupElement, error)
	// Adjoint returns the matrix of Ad_g acting on algebra coordinates.
	// Rⁿ returns the (n+1)×(n+1) identity of its homogeneous embedding
	// instead, which Apply does not accept.
	Adjoint(g GroupElement) (*mat.Dense, error)
	Exp(x AlgebraElement) GroupElement
	Log(g GroupElement) (AlgebraElement, error)
	ToMatrix(g GroupElement) *mat.Dense
}
