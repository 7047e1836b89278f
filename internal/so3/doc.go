// Package so3 implements the rotation algebra so(3) and the rotation group
// SO(3) in three parameterizations sharing one algebra:
//
//   - [QuatGroup]: unit quaternions (x, y, z, w)
//   - [DcmGroup]: 3×3 direction-cosine matrices
//   - [EulerB321Group]: body 3-2-1 Euler angles (no closed-form product)
//
// All three agree on the exponential map, so an element moves between
// parameterizations with [lie.Convert]:
//
//	q := so3.StdQuat().Exp(so3.StdAlgebra().Element(0, 0, math.Pi/2))
//	r, _ := lie.Convert(so3.StdDcm(), q)
//
// # Singularities
//
// The quaternion exponential and logarithm switch to series expansions
// below [lie.Epsilon], so exp(0) and log(identity) are exact and never NaN.
// Logarithms from the matrix and Euler forms return angles in [0, π]; the
// quaternion logarithm returns angles in [0, 2π).
package so3
