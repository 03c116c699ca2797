// Package bloch implements the Bloch equation of nuclear magnetization
// in the rotating frame, its closed-form propagators, and the analytic
// Jacobians of the equation with respect to state and tissue parameters:
//
//   - [RotX], [RotY], [RotZ]: elementary axis rotations
//   - [Derivative]: dM/dt = M x B - relaxation
//   - [Relax], [Excite], [ExcitePhased]: closed-form propagators
//   - [StateJacobian], [RateJacobian], [RateB1Jacobian]: partial
//     derivatives feeding the sensitivity-augmented operators in
//     package operator
//
// All rotations use a right-handed coordinate system with clockwise
// rotation for positive angles, consistent with the precession sign of
// the Bloch equation.
//
// # Thread Safety
//
// Every function is pure and allocation-free on the hot path; values
// in, values out. Safe to call concurrently.
package bloch
