package so3_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/lie"
	"github.com/san-kum/liesim/internal/so3"
)

const tol = 1e-9

func mustGroup(h lie.GroupElement, err error) lie.GroupElement {
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return h
}

func mustLog(x lie.AlgebraElement, err error) lie.AlgebraElement {
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return x
}

func expectMatrix(got mat.Matrix, want []float64) {
	ExpectWithOffset(1, mat.EqualApprox(got, mat.NewDense(3, 3, want), tol)).To(BeTrue(),
		"got\n%v", mat.Formatted(got))
}

var _ = Describe("so(3) algebra", func() {
	alg := so3.StdAlgebra()

	It("builds the skew-symmetric matrix", func() {
		expectMatrix(alg.Wedge(alg.Element(1, 2, 3)), []float64{
			0, -3, 2,
			3, 0, -1,
			-2, 1, 0,
		})
	})

	DescribeTable("wedge and vee are inverse",
		func(x, y, z float64) {
			w := alg.Wedge(alg.Element(x, y, z))
			Expect(mat.Equal(alg.Wedge(alg.Vee(w)), w)).To(BeTrue())
			Expect(alg.Vee(w).Param()).To(Equal([]float64{x, y, z}))
		},
		Entry("zero", 0.0, 0.0, 0.0),
		Entry("axis", 0.0, 0.0, 1.0),
		Entry("general", 0.3, -1.2, 2.5),
	)

	It("acts componentwise for vector-space operations", func() {
		x, y := alg.Element(1, 2, 3), alg.Element(-1, 0.5, 2)
		Expect(x.Add(y).Param()).To(Equal([]float64{0, 2.5, 5}))
		Expect(x.Scale(2).Param()).To(Equal([]float64{2, 4, 6}))
		Expect(x.Neg().Param()).To(Equal([]float64{-1, -2, -3}))
		Expect(x.Sub(x).Param()).To(Equal([]float64{0, 0, 0}))
	})

	It("uses the cross product as bracket", func() {
		x, y := alg.Element(1, 0, 0), alg.Element(0, 1, 0)
		Expect(x.Bracket(y).Param()).To(Equal([]float64{0, 0, 1}))
		Expect(y.Bracket(x).Param()).To(Equal([]float64{0, 0, -1}))
	})

	It("agrees with the matrix commutator", func() {
		x, y := alg.Element(0.2, -0.7, 1.1), alg.Element(-0.4, 0.9, 0.3)
		Expect(lie.MatrixBracket(alg, x, y).ApproxEqual(alg.Bracket(x, y), tol)).To(BeTrue())
	})

	It("represents ad_x as the matrix of y ↦ [x, y]", func() {
		x, y := alg.Element(0.5, 1, -2), alg.Element(3, -1, 0.25)
		Expect(lie.Apply(alg.Adjoint(x), y).ApproxEqual(x.Bracket(y), tol)).To(BeTrue())
	})

	It("panics on elements of another so(3) instance", func() {
		other := so3.NewAlgebra()
		x, y := alg.Element(1, 0, 0), other.Element(0, 1, 0)
		Expect(func() { alg.Bracket(x, y) }).To(PanicWith(MatchError(lie.ErrAlgebraMismatch)))
	})

	It("panics on a non 3x3 matrix", func() {
		Expect(func() { alg.Vee(mat.NewDense(4, 4, nil)) }).To(PanicWith(MatchError(lie.ErrShapeMismatch)))
	})
})

var _ = Describe("SO(3) quaternion group", func() {
	alg := so3.StdAlgebra()
	grp := so3.StdQuat()

	It("has identity (0, 0, 0, 1)", func() {
		Expect(grp.Identity().Param()).To(Equal([]float64{0, 0, 0, 1}))
	})

	It("maps the zero rotation vector to the identity exactly", func() {
		Expect(grp.Exp(alg.Element(0, 0, 0)).Param()).To(Equal([]float64{0, 0, 0, 1}))
	})

	It("returns the zero rotation vector for log(identity)", func() {
		x := mustLog(grp.Log(grp.Identity()))
		Expect(x.Param()).To(Equal([]float64{0, 0, 0}))
	})

	It("stays finite for very small angles", func() {
		q := grp.Exp(alg.Element(1e-12, 0, 0))
		Expect(q.At(0)).To(BeNumerically("~", 5e-13, 1e-20))
		Expect(q.At(3)).To(BeNumerically("~", 1, 1e-15))
		x := mustLog(grp.Log(q))
		Expect(x.At(0)).To(BeNumerically("~", 1e-12, 1e-20))
	})

	It("keeps the first order term below the small-angle threshold", func() {
		q := grp.Element(5e-9, 0, 0, math.Sqrt(1-25e-18))
		x := mustLog(grp.Log(q))
		Expect(x.Param()).To(Equal([]float64{1e-8, 0, 0}))
	})

	DescribeTable("log inverts exp on the principal branch",
		func(x, y, z float64) {
			v := alg.Element(x, y, z)
			Expect(mustLog(grp.Log(grp.Exp(v))).ApproxEqual(v, tol)).To(BeTrue())
		},
		Entry("quarter turn about x", math.Pi/2, 0.0, 0.0),
		Entry("oblique", 0.3, -0.4, 1.2),
		Entry("past half turn", 0.0, 2.0, 3.0),
		Entry("near full turn", 0.0, 0.0, 2*math.Pi-0.01),
	)

	It("satisfies g·g⁻¹ = e", func() {
		for _, v := range []lie.AlgebraElement{alg.Element(0.1, 0.2, 0.3), alg.Element(-2, 1, 0.5)} {
			g := grp.Exp(v)
			inv := mustGroup(grp.Inverse(g))
			Expect(mustGroup(grp.Product(g, inv)).ApproxEqual(grp.Identity(), tol)).To(BeTrue())
			Expect(mustGroup(grp.Product(inv, g)).ApproxEqual(grp.Identity(), tol)).To(BeTrue())
		}
	})

	It("is associative but not commutative", func() {
		a := grp.Exp(alg.Element(0.5, 0, 0))
		b := grp.Exp(alg.Element(0, 0.7, 0))
		c := grp.Exp(alg.Element(0.1, -0.3, 0.9))

		left := mustGroup(grp.Product(mustGroup(grp.Product(a, b)), c))
		right := mustGroup(grp.Product(a, mustGroup(grp.Product(b, c))))
		Expect(left.ApproxEqual(right, tol)).To(BeTrue())

		ab := mustGroup(grp.Product(a, b))
		ba := mustGroup(grp.Product(b, a))
		Expect(ab.ApproxEqual(ba, 1e-3)).To(BeFalse())
	})

	It("keeps unit norm under composition", func() {
		g := grp.Exp(alg.Element(1, 2, 3))
		h := grp.Exp(alg.Element(-0.5, 0.1, 0.4))
		Expect(grp.Norm(mustGroup(grp.Product(g, h)))).To(BeNumerically("~", 1, tol))
	})

	It("produces the closed-form quarter turn about z", func() {
		expectMatrix(grp.ToMatrix(grp.Exp(alg.Element(0, 0, math.Pi/2))), []float64{
			0, -1, 0,
			1, 0, 0,
			0, 0, 1,
		})
	})

	It("produces orthonormal matrices", func() {
		r := grp.ToMatrix(grp.Exp(alg.Element(0.3, -1.1, 0.8)))
		var rtr mat.Dense
		rtr.Mul(r.T(), r)
		expectMatrix(&rtr, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
		Expect(mat.Det(r)).To(BeNumerically("~", 1, tol))
	})

	It("rotates vectors like its matrix", func() {
		g := grp.Exp(alg.Element(0, 0, math.Pi/2))
		v := grp.Rotate(g, r3.Vec{X: 1})
		Expect(v.X).To(BeNumerically("~", 0, tol))
		Expect(v.Y).To(BeNumerically("~", 1, tol))
		Expect(v.Z).To(BeNumerically("~", 0, tol))
	})

	It("preserves the bracket under the adjoint", func() {
		g := grp.Exp(alg.Element(0.4, -0.2, 1.3))
		ad, err := grp.Adjoint(g)
		Expect(err).NotTo(HaveOccurred())

		x, y := alg.Element(1, 2, -1), alg.Element(0.5, -0.3, 2)
		lhs := lie.Apply(ad, x.Bracket(y))
		rhs := lie.Apply(ad, x).Bracket(lie.Apply(ad, y))
		Expect(lhs.ApproxEqual(rhs, tol)).To(BeTrue())
	})

	It("matches conjugation in the matrix representation", func() {
		g := grp.Exp(alg.Element(0.7, 0.1, -0.6))
		x := alg.Element(0.2, 0.4, 0.8)
		ad, _ := grp.Adjoint(g)

		r := grp.ToMatrix(g)
		var rx, conj mat.Dense
		rx.Mul(r, alg.Wedge(x))
		conj.Mul(&rx, r.T())
		Expect(alg.Vee(&conj).ApproxEqual(lie.Apply(ad, x), tol)).To(BeTrue())
	})

	It("treats q and -q as the same rotation", func() {
		g := grp.Exp(alg.Element(0.1, 0.2, 0.3))
		p := g.Param()
		neg := grp.Element(-p[0], -p[1], -p[2], -p[3])
		Expect(grp.SameRotation(g, neg, tol)).To(BeTrue())
	})

	It("panics on elements of another quaternion group", func() {
		other := so3.NewQuatGroup(alg)
		Expect(func() { _, _ = grp.Product(grp.Identity(), other.Identity()) }).
			To(PanicWith(MatchError(lie.ErrGroupMismatch)))
	})

	It("panics on a wrong-length parameter vector", func() {
		Expect(func() { lie.NewGroupElement(grp, []float64{0, 0, 1}) }).
			To(PanicWith(MatchError(lie.ErrShapeMismatch)))
	})
})

var _ = Describe("SO(3) matrix group", func() {
	alg := so3.StdAlgebra()
	dcm := so3.StdDcm()
	q := so3.StdQuat()

	It("has the 3x3 identity", func() {
		expectMatrix(dcm.ToMatrix(dcm.Identity()), []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	})

	It("inverts by transposition", func() {
		g := dcm.Exp(alg.Element(0.3, 0.2, -0.9))
		inv := mustGroup(dcm.Inverse(g))
		Expect(mustGroup(dcm.Product(g, inv)).ApproxEqual(dcm.Identity(), tol)).To(BeTrue())
		Expect(mat.Equal(dcm.ToMatrix(inv), dcm.ToMatrix(g).T())).To(BeTrue())
	})

	It("agrees with the quaternion exponential", func() {
		v := alg.Element(-0.4, 1.3, 0.2)
		Expect(mat.EqualApprox(dcm.ToMatrix(dcm.Exp(v)), q.ToMatrix(q.Exp(v)), tol)).To(BeTrue())
	})

	It("composes like the quaternion product", func() {
		a, b := alg.Element(0.5, 0, 0.2), alg.Element(0, 0.7, -0.1)
		viaDcm := mustGroup(dcm.Product(dcm.Exp(a), dcm.Exp(b)))
		viaQuat := mustGroup(q.Product(q.Exp(a), q.Exp(b)))
		Expect(mat.EqualApprox(dcm.ToMatrix(viaDcm), q.ToMatrix(viaQuat), tol)).To(BeTrue())
	})

	DescribeTable("log inverts exp for angles below π",
		func(x, y, z float64) {
			v := alg.Element(x, y, z)
			Expect(mustLog(dcm.Log(dcm.Exp(v))).ApproxEqual(v, 1e-8)).To(BeTrue())
		},
		Entry("zero", 0.0, 0.0, 0.0),
		Entry("small", 1e-6, -2e-6, 0.0),
		Entry("quarter turn", 0.0, math.Pi/2, 0.0),
		Entry("oblique", 0.3, -0.4, 1.2),
		Entry("near half turn", 0.0, 0.0, math.Pi-1e-3),
		Entry("large x", 2.8, 0.1, 0.0),
	)

	It("returns the equivalent short rotation past π", func() {
		g := dcm.Exp(alg.Element(0, 0, 3*math.Pi/2))
		Expect(mustLog(dcm.Log(g)).ApproxEqual(alg.Element(0, 0, -math.Pi/2), tol)).To(BeTrue())
	})

	It("uses the matrix itself as adjoint", func() {
		g := dcm.Exp(alg.Element(0.1, 0.2, 0.3))
		ad, err := dcm.Adjoint(g)
		Expect(err).NotTo(HaveOccurred())
		Expect(mat.Equal(ad, dcm.ToMatrix(g))).To(BeTrue())
	})

	It("rejects non 3x3 matrices", func() {
		Expect(func() { dcm.FromMatrix(mat.NewDense(2, 3, nil)) }).To(PanicWith(MatchError(lie.ErrShapeMismatch)))
	})
})

var _ = Describe("SO(3) Euler B321 group", func() {
	alg := so3.StdAlgebra()
	eul := so3.StdEulerB321()
	q := so3.StdQuat()

	It("reads a pure yaw as ψ", func() {
		g := eul.Exp(alg.Element(0, 0, 0.8))
		Expect(g.At(0)).To(BeNumerically("~", 0.8, tol))
		Expect(g.At(1)).To(BeNumerically("~", 0, tol))
		Expect(g.At(2)).To(BeNumerically("~", 0, tol))
	})

	It("matches the quaternion matrix", func() {
		v := alg.Element(0.2, -0.5, 0.9)
		Expect(mat.EqualApprox(eul.ToMatrix(eul.Exp(v)), q.ToMatrix(q.Exp(v)), tol)).To(BeTrue())
	})

	It("round trips through log", func() {
		v := alg.Element(0.2, -0.5, 0.9)
		Expect(mustLog(eul.Log(eul.Exp(v))).ApproxEqual(v, tol)).To(BeTrue())
	})

	It("inverts through the quaternion conjugate", func() {
		g := eul.Element(0.4, 0.3, -0.2)
		inv := mustGroup(eul.Inverse(g))
		var m mat.Dense
		m.Mul(eul.ToMatrix(g), eul.ToMatrix(inv))
		expectMatrix(&m, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	})

	It("reports product and adjoint as unsupported", func() {
		g := eul.Element(0.1, 0.2, 0.3)
		_, err := eul.Product(g, g)
		Expect(err).To(MatchError(lie.ErrUnsupported))
		var unsupported *lie.UnsupportedError
		Expect(err).To(BeAssignableToTypeOf(unsupported))

		_, err = eul.Adjoint(g)
		Expect(err).To(MatchError(lie.ErrUnsupported))
	})

	It("composes through a fallback parameterization", func() {
		a, b := alg.Element(0.3, 0, 0.1), alg.Element(0, 0.4, -0.2)
		got, err := lie.Compose(eul.Exp(a), eul.Exp(b), q)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Group()).To(BeIdenticalTo(lie.Group(eul)))

		want := mustGroup(q.Product(q.Exp(a), q.Exp(b)))
		Expect(mat.EqualApprox(eul.ToMatrix(got), q.ToMatrix(want), tol)).To(BeTrue())
	})

	It("surfaces unsupported without a fallback", func() {
		g := eul.Identity()
		_, err := lie.Compose(g, g, nil)
		Expect(err).To(MatchError(lie.ErrUnsupported))
	})
})

var _ = Describe("conversion between parameterizations", func() {
	alg := so3.StdAlgebra()
	q, dcm, eul := so3.StdQuat(), so3.StdDcm(), so3.StdEulerB321()

	It("goes quaternion → matrix → Euler → quaternion", func() {
		g := q.Exp(alg.Element(0.6, -0.2, 0.4))
		m := mustGroup(lie.Convert(dcm, g))
		e := mustGroup(lie.Convert(eul, m))
		back := mustGroup(lie.Convert(q, e))
		Expect(q.SameRotation(g, back, tol)).To(BeTrue())
		Expect(mat.EqualApprox(dcm.ToMatrix(m), q.ToMatrix(g), tol)).To(BeTrue())
	})

	It("returns the element unchanged for the same group", func() {
		g := q.Exp(alg.Element(0.1, 0, 0))
		Expect(mustGroup(lie.Convert(q, g)).Param()).To(Equal(g.Param()))
	})

	It("refuses groups over a different algebra", func() {
		foreign := so3.NewDcmGroup(so3.NewAlgebra())
		Expect(func() { _, _ = lie.Convert(foreign, q.Identity()) }).To(PanicWith(MatchError(lie.ErrAlgebraMismatch)))
	})
})
