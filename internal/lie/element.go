package lie

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// AlgebraElement is a coordinate vector bound to the algebra that owns it.
// The zero value is not usable.
type AlgebraElement struct {
	algebra Algebra
	param   []float64
}

// NewAlgebraElement copies param into a new element of a.
func NewAlgebraElement(a Algebra, param []float64) AlgebraElement {
	mustLen(a.Name()+".element", a.Dim(), len(param))
	p := make([]float64, len(param))
	copy(p, param)
	return AlgebraElement{algebra: a, param: p}
}

// Zero returns the zero element of a.
func Zero(a Algebra) AlgebraElement {
	return AlgebraElement{algebra: a, param: make([]float64, a.Dim())}
}

func (x AlgebraElement) Algebra() Algebra { return x.algebra }

// Param returns a copy of the coordinates.
func (x AlgebraElement) Param() []float64 {
	p := make([]float64, len(x.param))
	copy(p, x.param)
	return p
}

func (x AlgebraElement) At(i int) float64 { return x.param[i] }
func (x AlgebraElement) Len() int         { return len(x.param) }
func (x AlgebraElement) Norm() float64    { return floats.Norm(x.param, 2) }

func (x AlgebraElement) Add(y AlgebraElement) AlgebraElement     { return x.algebra.Add(x, y) }
func (x AlgebraElement) Scale(s float64) AlgebraElement          { return x.algebra.Scale(s, x) }
func (x AlgebraElement) Neg() AlgebraElement                     { return x.algebra.Scale(-1, x) }
func (x AlgebraElement) Sub(y AlgebraElement) AlgebraElement     { return x.algebra.Add(x, y.Neg()) }
func (x AlgebraElement) Bracket(y AlgebraElement) AlgebraElement { return x.algebra.Bracket(x, y) }

// Equal reports exact equality of owner and coordinates.
func (x AlgebraElement) Equal(y AlgebraElement) bool {
	return x.algebra == y.algebra && floats.Equal(x.param, y.param)
}

// ApproxEqual reports whether x and y share an owner and agree within tol.
func (x AlgebraElement) ApproxEqual(y AlgebraElement, tol float64) bool {
	return x.algebra == y.algebra && floats.EqualApprox(x.param, y.param, tol)
}

func (x AlgebraElement) String() string {
	return fmt.Sprintf("%s%s", nameOf(x.algebra), formatParam(x.param))
}

// GroupElement is a coordinate vector in its group's parameterization.
// The zero value is not usable.
type GroupElement struct {
	group Group
	param []float64
}

// NewGroupElement copies param into a new element of g.
func NewGroupElement(g Group, param []float64) GroupElement {
	mustLen(g.Name()+".element", g.ParamLen(), len(param))
	p := make([]float64, len(param))
	copy(p, param)
	return GroupElement{group: g, param: p}
}

func (h GroupElement) Group() Group { return h.group }

// Param returns a copy of the coordinates.
func (h GroupElement) Param() []float64 {
	p := make([]float64, len(h.param))
	copy(p, h.param)
	return p
}

func (h GroupElement) At(i int) float64 { return h.param[i] }
func (h GroupElement) Len() int         { return len(h.param) }

// ApproxEqual compares coordinates only. Parameterizations with a double
// cover (quaternions) should compare through ToMatrix instead.
func (h GroupElement) ApproxEqual(k GroupElement, tol float64) bool {
	return h.group == k.group && floats.EqualApprox(h.param, k.param, tol)
}

func (h GroupElement) String() string {
	return fmt.Sprintf("%s%s", nameOf(h.group), formatParam(h.param))
}

func formatParam(p []float64) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
