package so3

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
)

// Algebra is so(3), the rotation-vector tangent space.
type Algebra struct {
	name string
}

func NewAlgebra() *Algebra {
	return &Algebra{name: "so3"}
}

func (a *Algebra) Name() string                  { return a.name }
func (a *Algebra) Dim() int                      { return 3 }
func (a *Algebra) MatrixShape() (rows, cols int) { return 3, 3 }

// Element builds the rotation vector (x, y, z).
func (a *Algebra) Element(x, y, z float64) lie.AlgebraElement {
	return lie.NewAlgebraElement(a, []float64{x, y, z})
}

// FromVec builds an element from a gonum vector.
func (a *Algebra) FromVec(v r3.Vec) lie.AlgebraElement {
	return a.Element(v.X, v.Y, v.Z)
}

// Vec returns the coordinates of x as a gonum vector.
func (a *Algebra) Vec(x lie.AlgebraElement) r3.Vec {
	lie.MustOwnAlgebra(a.name+".vec", a, x)
	return vec(x)
}

// Bracket is the cross product x × y.
func (a *Algebra) Bracket(x, y lie.AlgebraElement) lie.AlgebraElement {
	lie.MustOwnAlgebra(a.name+".bracket", a, x, y)
	return a.FromVec(r3.Cross(vec(x), vec(y)))
}

func (a *Algebra) Add(x, y lie.AlgebraElement) lie.AlgebraElement {
	lie.MustOwnAlgebra(a.name+".add", a, x, y)
	return a.FromVec(r3.Add(vec(x), vec(y)))
}

func (a *Algebra) Scale(s float64, x lie.AlgebraElement) lie.AlgebraElement {
	lie.MustOwnAlgebra(a.name+".scale", a, x)
	return a.FromVec(r3.Scale(s, vec(x)))
}

// Adjoint is ad_x = wedge(x), since [x, y] = x × y = wedge(x)·y.
func (a *Algebra) Adjoint(x lie.AlgebraElement) *mat.Dense {
	return a.Wedge(x)
}

func (a *Algebra) Wedge(x lie.AlgebraElement) *mat.Dense {
	lie.MustOwnAlgebra(a.name+".wedge", a, x)
	return skew(vec(x))
}

func (a *Algebra) Vee(m mat.Matrix) lie.AlgebraElement {
	r, c := m.Dims()
	lie.MustShape(a.name+".vee", 3, 3, r, c)
	return a.Element(m.At(2, 1), m.At(0, 2), m.At(1, 0))
}

func vec(x lie.AlgebraElement) r3.Vec {
	return r3.Vec{X: x.At(0), Y: x.At(1), Z: x.At(2)}
}

func skew(v r3.Vec) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
}
