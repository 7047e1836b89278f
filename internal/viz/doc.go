// Package viz renders rotations in the terminal.
//
// Attitudes are drawn as a wireframe cube with body axes on a Braille
// [Canvas], projected through a [Camera] whose view is itself an SO(3)
// element. Two Bubble Tea programs build on it:
//
//   - [Explorer]: edit a rotation vector and watch it through the
//     quaternion, matrix and Euler-angle parameterizations
//   - [Player]: replay a recorded trajectory with a rotation-angle chart
//
// Styles follow [CurrentTheme]; press t in either program to cycle themes.
package viz
