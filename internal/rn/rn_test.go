package rn

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/liesim/internal/lie"
)

func TestExpLogAreIdentity(t *testing.T) {
	tests := []struct {
		name  string
		group *Group
		param []float64
	}{
		{"r2 zero", Group2(), []float64{0, 0}},
		{"r2 general", Group2(), []float64{1.5, -2.25}},
		{"r3 general", Group3(), []float64{0.1, 1e300, -math.Pi}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			x := lie.NewAlgebraElement(tt.group.Algebra(), tt.param)

			h := tt.group.Exp(x)
			g.Expect(h.Param()).To(Equal(tt.param))

			back, err := tt.group.Log(h)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(back.Equal(x)).To(BeTrue())
		})
	}
}

func TestGroupOperations(t *testing.T) {
	g := NewWithT(t)
	grp := Group3()
	a, b := grp.Element(1, 2, 3), grp.Element(-4, 0.5, 2)

	ab, err := grp.Product(a, b)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ab.Param()).To(Equal([]float64{-3, 2.5, 5}))

	ba, _ := grp.Product(b, a)
	g.Expect(ba.Param()).To(Equal(ab.Param()))

	inv, err := grp.Inverse(a)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(inv.Param()).To(Equal([]float64{-1, -2, -3}))

	e, _ := grp.Product(a, inv)
	g.Expect(e.Param()).To(Equal(grp.Identity().Param()))
	g.Expect(grp.Identity().Param()).To(Equal([]float64{0, 0, 0}))
}

func TestAlgebraIsAbelian(t *testing.T) {
	g := NewWithT(t)
	alg := Algebra3()
	x, y := alg.Element(1, 2, 3), alg.Element(4, 5, 6)

	g.Expect(x.Bracket(y).Param()).To(Equal([]float64{0, 0, 0}))
	g.Expect(lie.MatrixBracket(alg, x, y).Param()).To(Equal([]float64{0, 0, 0}))
	g.Expect(mat.Equal(alg.Adjoint(x), mat.NewDense(3, 3, nil))).To(BeTrue())

	g.Expect(x.Add(y).Param()).To(Equal([]float64{5, 7, 9}))
	g.Expect(x.Scale(-2).Param()).To(Equal([]float64{-2, -4, -6}))
}

func TestMatrixRepresentations(t *testing.T) {
	g := NewWithT(t)
	alg := Algebra2()
	grp := Group2()

	w := alg.Wedge(alg.Element(3, -1))
	g.Expect(mat.Equal(w, mat.NewDense(3, 3, []float64{
		0, 0, 3,
		0, 0, -1,
		0, 0, 0,
	}))).To(BeTrue())
	g.Expect(alg.Vee(w).Param()).To(Equal([]float64{3, -1}))
	g.Expect(mat.Equal(alg.Wedge(alg.Vee(w)), w)).To(BeTrue())

	m := grp.ToMatrix(grp.Element(3, -1))
	g.Expect(mat.Equal(m, mat.NewDense(3, 3, []float64{
		1, 0, 3,
		0, 1, -1,
		0, 0, 1,
	}))).To(BeTrue())

	ad, err := grp.Adjoint(grp.Element(3, -1))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(mat.Equal(ad, eye(3))).To(BeTrue())
}

func TestAdjointIsHomogeneousIdentity(t *testing.T) {
	g := NewWithT(t)
	grp := Group3()

	ad, err := grp.Adjoint(grp.Element(1, 2, 3))
	g.Expect(err).NotTo(HaveOccurred())
	rows, cols := ad.Dims()
	g.Expect([]int{rows, cols}).To(Equal([]int{4, 4}))
	g.Expect(func() { lie.Apply(ad, Algebra3().Element(1, 2, 3)) }).
		To(PanicWith(MatchError(lie.ErrShapeMismatch)))
}

func TestProductMatchesMatrixProduct(t *testing.T) {
	g := NewWithT(t)
	grp := Group3()
	a, b := grp.Element(1, 0, -2), grp.Element(0.5, 3, 1)

	ab, _ := grp.Product(a, b)
	var m mat.Dense
	m.Mul(grp.ToMatrix(a), grp.ToMatrix(b))
	g.Expect(mat.Equal(&m, grp.ToMatrix(ab))).To(BeTrue())
}

func TestOwnership(t *testing.T) {
	g := NewWithT(t)

	// A separately built R3 is a different group even though it has the
	// same dimension.
	other := NewGroup(NewAlgebra(3))
	g.Expect(func() { _, _ = Group3().Product(Group3().Identity(), other.Identity()) }).
		To(PanicWith(MatchError(lie.ErrGroupMismatch)))

	g.Expect(func() { Group3().Exp(Algebra2().Element(1, 2)) }).
		To(PanicWith(MatchError(lie.ErrAlgebraMismatch)))

	g.Expect(func() { Group2().Element(1, 2, 3) }).
		To(PanicWith(MatchError(lie.ErrShapeMismatch)))

	g.Expect(func() { NewAlgebra(0) }).To(PanicWith(MatchError(lie.ErrShapeMismatch)))
}

func TestSharedInstances(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Group2()).To(BeIdenticalTo(Group2()))
	g.Expect(Group3().Algebra()).To(BeIdenticalTo(lie.Algebra(Algebra3())))
	g.Expect(Group2().Name()).To(Equal("R2"))
	g.Expect(Algebra3().Name()).To(Equal("r3"))
	rows, cols := Group3().MatrixShape()
	g.Expect([]int{rows, cols}).To(Equal([]int{4, 4}))
}
