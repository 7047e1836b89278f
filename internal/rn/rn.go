// Package rn implements the translation group Rⁿ and its abelian algebra.
//
// The group is flat: the bracket is zero, the product is vector addition
// and exp/log are the identity map between coordinate spaces. Matrix
// representations use the homogeneous (n+1)×(n+1) embedding with the
// coordinates in the last column.
package rn

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/liesim/internal/lie"
)

// Algebra is the abelian Lie algebra rⁿ.
type Algebra struct {
	n int
}

func NewAlgebra(n int) *Algebra {
	if n < 1 {
		panic(&lie.PreconditionError{Op: "rn.NewAlgebra", Want: ">= 1", Got: fmt.Sprint(n), Wrapped: lie.ErrShapeMismatch})
	}
	return &Algebra{n: n}
}

func (a *Algebra) Name() string                  { return fmt.Sprintf("r%d", a.n) }
func (a *Algebra) Dim() int                      { return a.n }
func (a *Algebra) MatrixShape() (rows, cols int) { return a.n + 1, a.n + 1 }

// Element builds an element from its coordinates.
func (a *Algebra) Element(param ...float64) lie.AlgebraElement {
	return lie.NewAlgebraElement(a, param)
}

func (a *Algebra) Bracket(x, y lie.AlgebraElement) lie.AlgebraElement {
	lie.MustOwnAlgebra(a.Name()+".bracket", a, x, y)
	return lie.Zero(a)
}

func (a *Algebra) Add(x, y lie.AlgebraElement) lie.AlgebraElement {
	lie.MustOwnAlgebra(a.Name()+".add", a, x, y)
	p := x.Param()
	for i := range p {
		p[i] += y.At(i)
	}
	return lie.NewAlgebraElement(a, p)
}

func (a *Algebra) Scale(s float64, x lie.AlgebraElement) lie.AlgebraElement {
	lie.MustOwnAlgebra(a.Name()+".scale", a, x)
	p := x.Param()
	for i := range p {
		p[i] *= s
	}
	return lie.NewAlgebraElement(a, p)
}

func (a *Algebra) Adjoint(x lie.AlgebraElement) *mat.Dense {
	lie.MustOwnAlgebra(a.Name()+".adjoint", a, x)
	return mat.NewDense(a.n, a.n, nil)
}

func (a *Algebra) Wedge(x lie.AlgebraElement) *mat.Dense {
	lie.MustOwnAlgebra(a.Name()+".wedge", a, x)
	m := mat.NewDense(a.n+1, a.n+1, nil)
	for i := 0; i < a.n; i++ {
		m.Set(i, a.n, x.At(i))
	}
	return m
}

func (a *Algebra) Vee(m mat.Matrix) lie.AlgebraElement {
	r, c := m.Dims()
	lie.MustShape(a.Name()+".vee", a.n+1, a.n+1, r, c)
	p := make([]float64, a.n)
	for i := range p {
		p[i] = m.At(i, a.n)
	}
	return lie.NewAlgebraElement(a, p)
}

// Group is the translation group Rⁿ.
type Group struct {
	algebra *Algebra
}

func NewGroup(a *Algebra) *Group {
	return &Group{algebra: a}
}

func (g *Group) Name() string                  { return fmt.Sprintf("R%d", g.algebra.n) }
func (g *Group) Algebra() lie.Algebra          { return g.algebra }
func (g *Group) Dim() int                      { return g.algebra.n }
func (g *Group) ParamLen() int                 { return g.algebra.n }
func (g *Group) MatrixShape() (rows, cols int) { return g.algebra.n + 1, g.algebra.n + 1 }

// Element builds an element from its coordinates.
func (g *Group) Element(param ...float64) lie.GroupElement {
	return lie.NewGroupElement(g, param)
}

func (g *Group) Identity() lie.GroupElement {
	return lie.NewGroupElement(g, make([]float64, g.algebra.n))
}

func (g *Group) Product(a, b lie.GroupElement) (lie.GroupElement, error) {
	lie.MustOwnGroup(g.Name()+".product", g, a, b)
	p := a.Param()
	for i := range p {
		p[i] += b.At(i)
	}
	return lie.NewGroupElement(g, p), nil
}

func (g *Group) Inverse(a lie.GroupElement) (lie.GroupElement, error) {
	lie.MustOwnGroup(g.Name()+".inverse", g, a)
	p := a.Param()
	for i := range p {
		p[i] = -p[i]
	}
	return lie.NewGroupElement(g, p), nil
}

// Adjoint is the identity on the homogeneous extension.
func (g *Group) Adjoint(a lie.GroupElement) (*mat.Dense, error) {
	lie.MustOwnGroup(g.Name()+".adjoint", g, a)
	return eye(g.algebra.n + 1), nil
}

func (g *Group) Exp(x lie.AlgebraElement) lie.GroupElement {
	lie.MustOwnAlgebra(g.Name()+".exp", g.algebra, x)
	return lie.NewGroupElement(g, x.Param())
}

func (g *Group) Log(a lie.GroupElement) (lie.AlgebraElement, error) {
	lie.MustOwnGroup(g.Name()+".log", g, a)
	return lie.NewAlgebraElement(g.algebra, a.Param()), nil
}

func (g *Group) ToMatrix(a lie.GroupElement) *mat.Dense {
	lie.MustOwnGroup(g.Name()+".to_matrix", g, a)
	n := g.algebra.n
	m := eye(n + 1)
	for i := 0; i < n; i++ {
		m.Set(i, n, a.At(i))
	}
	return m
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

var (
	algebra2 = sync.OnceValue(func() *Algebra { return NewAlgebra(2) })
	group2   = sync.OnceValue(func() *Group { return NewGroup(algebra2()) })
	algebra3 = sync.OnceValue(func() *Algebra { return NewAlgebra(3) })
	group3   = sync.OnceValue(func() *Group { return NewGroup(algebra3()) })
)

// Algebra2 returns the shared r2 instance.
func Algebra2() *Algebra { return algebra2() }

// Group2 returns the shared R2 instance over Algebra2.
func Group2() *Group { return group2() }

// Algebra3 returns the shared r3 instance.
func Algebra3() *Algebra { return algebra3() }

// Group3 returns the shared R3 instance over Algebra3.
func Group3() *Group { return group3() }
