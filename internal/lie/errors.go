package lie

import (
	"errors"
	"fmt"
)

// Domain errors for algebra and group operations.
var (
	// ErrAlgebraMismatch indicates an element owned by a different algebra.
	ErrAlgebraMismatch = errors.New("lie: element belongs to a different algebra")

	// ErrGroupMismatch indicates an element owned by a different group.
	ErrGroupMismatch = errors.New("lie: element belongs to a different group")

	// ErrShapeMismatch indicates a parameter vector or matrix of the wrong size.
	ErrShapeMismatch = errors.New("lie: parameter shape mismatch")

	// ErrUnsupported indicates an operation the parameterization does not implement.
	ErrUnsupported = errors.New("lie: operation not implemented for this parameterization")
)

// PreconditionError is the panic value raised when an operand violates an
// operation's preconditions.
type PreconditionError struct {
	Op      string
	Want    string
	Got     string
	Wrapped error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s (want %s, got %s)", e.Op, e.Wrapped, e.Want, e.Got)
}

func (e *PreconditionError) Unwrap() error {
	return e.Wrapped
}

// UnsupportedError reports which group refused which operation.
type UnsupportedError struct {
	Group string
	Op    string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Group, e.Op, ErrUnsupported)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// Unsupported builds the error a group returns for an operation it lacks.
func Unsupported(g Group, op string) error {
	return &UnsupportedError{Group: g.Name(), Op: op}
}

// MustOwnAlgebra panics unless every element is owned by a.
func MustOwnAlgebra(op string, a Algebra, xs ...AlgebraElement) {
	for _, x := range xs {
		if x.algebra != a {
			panic(&PreconditionError{Op: op, Want: nameOf(a), Got: nameOf(x.algebra), Wrapped: ErrAlgebraMismatch})
		}
	}
}

// MustOwnGroup panics unless every element is owned by g.
func MustOwnGroup(op string, g Group, hs ...GroupElement) {
	for _, h := range hs {
		if h.group != g {
			panic(&PreconditionError{Op: op, Want: nameOf(g), Got: nameOf(h.group), Wrapped: ErrGroupMismatch})
		}
	}
}

func mustLen(op string, want, got int) {
	if want != got {
		panic(&PreconditionError{Op: op, Want: fmt.Sprint(want), Got: fmt.Sprint(got), Wrapped: ErrShapeMismatch})
	}
}

// MustShape panics unless a matrix has the expected dimensions.
func MustShape(op string, wantR, wantC, gotR, gotC int) {
	if wantR != gotR || wantC != gotC {
		panic(&PreconditionError{
			Op:      op,
			Want:    fmt.Sprintf("%dx%d", wantR, wantC),
			Got:     fmt.Sprintf("%dx%d", gotR, gotC),
			Wrapped: ErrShapeMismatch,
		})
	}
}

type named interface{ Name() string }

func nameOf(n named) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name()
}
