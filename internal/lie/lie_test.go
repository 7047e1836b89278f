package lie_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/rn"
	"github.com/san-kum/liesim/internal/so3"
)

var _ = Describe("elements", func() {
	alg := so3.StdAlgebra()

	It("copy their parameters on the way in and out", func() {
		p := []float64{1, 2, 3}
		x := lie.NewAlgebraElement(alg, p)
		p[0] = 99
		Expect(x.At(0)).To(Equal(1.0))

		out := x.Param()
		out[1] = 99
		Expect(x.At(1)).To(Equal(2.0))
	})

	It("compare owner as well as coordinates", func() {
		x := alg.Element(1, 2, 3)
		y := so3.NewAlgebra().Element(1, 2, 3)
		Expect(x.Equal(alg.Element(1, 2, 3))).To(BeTrue())
		Expect(x.Equal(y)).To(BeFalse())
		Expect(x.ApproxEqual(y, 1)).To(BeFalse())
	})

	It("report their norm", func() {
		Expect(alg.Element(3, 4, 0).Norm()).To(Equal(5.0))
	})

	It("print with their owner", func() {
		Expect(alg.Element(1, 0, 0.5).String()).To(Equal("so3(1, 0, 0.5)"))
		Expect(rn.Group2().Element(1, 2).String()).To(Equal("R2(1, 2)"))
	})

	It("start from zero", func() {
		Expect(lie.Zero(rn.Algebra3()).Param()).To(Equal([]float64{0, 0, 0}))
	})
})

var _ = Describe("errors", func() {
	It("wrap the precondition sentinel", func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			Expect(ok).To(BeTrue())
			Expect(errors.Is(err, lie.ErrShapeMismatch)).To(BeTrue())

			var pe *lie.PreconditionError
			Expect(errors.As(err, &pe)).To(BeTrue())
			Expect(pe.Want).To(Equal("3"))
			Expect(pe.Got).To(Equal("2"))
			Expect(pe.Error()).To(ContainSubstring("so3.element"))
		}()
		lie.NewAlgebraElement(so3.StdAlgebra(), []float64{1, 2})
	})

	It("name the group and operation when unsupported", func() {
		err := lie.Unsupported(so3.StdEulerB321(), "product")
		Expect(err).To(MatchError(lie.ErrUnsupported))
		Expect(err.Error()).To(HavePrefix("SO3EulerB321.product"))
	})
})

var _ = Describe("Retract and Difference", func() {
	alg := so3.StdAlgebra()
	q := so3.StdQuat()

	It("are inverse right perturbations", func() {
		g := q.Exp(alg.Element(0.3, -0.2, 0.5))
		x := alg.Element(0.05, 0.1, -0.02)

		h, err := lie.Retract(g, x)
		Expect(err).NotTo(HaveOccurred())

		d, err := lie.Difference(h, g)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.ApproxEqual(x, 1e-12)).To(BeTrue())
	})

	It("reduce to addition and subtraction on Rn", func() {
		grp := rn.Group2()
		g := grp.Element(1, 1)

		h, err := lie.Retract(g, rn.Algebra2().Element(2, -3))
		Expect(err).NotTo(HaveOccurred())
		Expect(h.Param()).To(Equal([]float64{3, -2}))

		d, err := lie.Difference(h, g)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Param()).To(Equal([]float64{2, -3}))
	})

	It("propagate unsupported products", func() {
		eul := so3.StdEulerB321()
		_, err := lie.Retract(eul.Identity(), alg.Element(0, 0, 1))
		Expect(err).To(MatchError(lie.ErrUnsupported))
	})
})

var _ = Describe("Apply", func() {
	It("rotates a rotation vector by the adjoint", func() {
		q := so3.StdQuat()
		alg := so3.StdAlgebra()
		ad, _ := q.Adjoint(q.Exp(alg.Element(0, 0, math.Pi/2)))
		got := lie.Apply(ad, alg.Element(1, 0, 0))
		Expect(got.ApproxEqual(alg.Element(0, 1, 0), 1e-12)).To(BeTrue())
	})

	It("panics on a matrix of the wrong size", func() {
		Expect(func() { lie.Apply(mat.NewDense(4, 4, nil), so3.StdAlgebra().Element(1, 0, 0)) }).
			To(PanicWith(MatchError(lie.ErrShapeMismatch)))
	})
})
