// Package attitude propagates rigid-body poses using only the group
// primitives from [lie], [so3] and [rn].
//
// A [Pose] pairs an SO(3) quaternion with an R3 translation. A [Stepper]
// advances it under a body-frame [Twist] supplied by a [TwistProfile]:
//
//	sim := attitude.New(attitude.LieEuler{}, attitude.ConstantTwist{Value: tw})
//	sim.AddMetric(attitude.NewNormDrift())
//	result, err := sim.Run(ctx, attitude.Identity(), attitude.DefaultConfig())
//
// The geometric steppers move along exp and stay on the manifold. The
// [Additive] stepper integrates quaternion rates in the embedding space and
// is kept to make the resulting norm drift observable.
package attitude
