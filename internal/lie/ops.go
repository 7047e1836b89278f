package lie

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Convert re-expresses g in another parameterization of the same algebra by
// taking the logarithm in g's group and the exponential in to.
func Convert(to Group, g GroupElement) (GroupElement, error) {
	from := g.group
	if to.Algebra() != from.Algebra() {
		panic(&PreconditionError{Op: "convert", Want: nameOf(from.Algebra()), Got: nameOf(to.Algebra()), Wrapped: ErrAlgebraMismatch})
	}
	if to == from {
		return g, nil
	}
	x, err := from.Log(g)
	if err != nil {
		return GroupElement{}, fmt.Errorf("convert %s to %s: %w", from.Name(), to.Name(), err)
	}
	return to.Exp(x), nil
}

// Compose returns g·h. When g's group does not implement Product, both
// operands are converted to fallback, composed there and converted back.
func Compose(g, h GroupElement, fallback Group) (GroupElement, error) {
	own := g.group
	k, err := own.Product(g, h)
	if err == nil || !errors.Is(err, ErrUnsupported) || fallback == nil {
		return k, err
	}

	fg, err := Convert(fallback, g)
	if err != nil {
		return GroupElement{}, err
	}
	fh, err := Convert(fallback, h)
	if err != nil {
		return GroupElement{}, err
	}
	fk, err := fallback.Product(fg, fh)
	if err != nil {
		return GroupElement{}, err
	}
	return Convert(own, fk)
}

// Retract moves g along the right-perturbation x: g·exp(x).
func Retract(g GroupElement, x AlgebraElement) (GroupElement, error) {
	return g.group.Product(g, g.group.Exp(x))
}

// Difference returns log(h⁻¹·g), the right-perturbation taking h to g.
func Difference(g, h GroupElement) (AlgebraElement, error) {
	grp := g.group
	MustOwnGroup("difference", grp, h)
	hInv, err := grp.Inverse(h)
	if err != nil {
		return AlgebraElement{}, err
	}
	d, err := grp.Product(hInv, g)
	if err != nil {
		return AlgebraElement{}, err
	}
	return grp.Log(d)
}

// MatrixBracket computes vee(XY − YX) from the matrix representation. It
// agrees with Bracket for any algebra whose Wedge is a Lie algebra
// homomorphism.
func MatrixBracket(a Algebra, x, y AlgebraElement) AlgebraElement {
	MustOwnAlgebra("matrix_bracket", a, x, y)
	wx, wy := a.Wedge(x), a.Wedge(y)
	var xy, yx mat.Dense
	xy.Mul(wx, wy)
	yx.Mul(wy, wx)
	xy.Sub(&xy, &yx)
	return a.Vee(&xy)
}

// Apply multiplies an adjoint matrix into the coordinates of x.
func Apply(m mat.Matrix, x AlgebraElement) AlgebraElement {
	r, c := m.Dims()
	MustShape("apply", x.Len(), x.Len(), r, c)
	out := mat.NewVecDense(r, nil)
	out.MulVec(m, mat.NewVecDense(len(x.param), x.Param()))
	return NewAlgebraElement(x.algebra, out.RawVector().Data)
}
