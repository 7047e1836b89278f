// Package lie defines the contract shared by every concrete Lie algebra and
// Lie group in liesim.
//
// The package provides:
//
//   - [Algebra]: a tangent space with bracket, vector-space operations,
//     adjoint and the wedge/vee isomorphisms to its matrix representation
//   - [Group]: a manifold with product, inverse, identity, adjoint and the
//     exponential and logarithm maps to and from its [Algebra]
//   - [AlgebraElement], [GroupElement]: immutable values tagged with the
//     instance that owns them
//
// # Ownership
//
// Elements remember the algebra or group that produced them. Operations
// compare owners by identity, never by dimension: two groups built over
// the same algebra type are distinct. Mixing owners, or passing a parameter
// vector of the wrong length, is a programming error and panics with a
// [*PreconditionError].
//
// # Unsupported operations
//
// Some parameterizations cannot express every group operation in closed
// form. Those return an error matching [ErrUnsupported]; [Compose] shows how
// to fall back to another parameterization of the same algebra.
//
// # Thread Safety
//
// Every operation is a pure function over immutable values. Algebra and
// group instances are read-only after construction and may be shared freely.
package lie
