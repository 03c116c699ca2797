// Package operator assembles the homogeneous linear ODE operators that
// evolve magnetization (and its parameter sensitivities) over one
// interval of piecewise-constant field and relaxation parameters.
//
// The affine relaxation-toward-equilibrium term is made linear by a
// trailing homogeneous "1" coordinate, so a single matrix exponential
// advances the full augmented state exactly:
//
//   - [Base]: 4x4 single-pool Bloch operator
//   - [Sensitivity]: 10x10, adds dM/dR1 and dM/dR2 blocks
//   - [SensitivityB1]: 13x13, adds a dM/dB1 block
//   - [McConnell]: (1+3P)x(1+3P) multi-pool chemical-exchange operator
//
// Sensitivity augmentation is exact only while all parameters are held
// constant over the interval; the sequence layer discretizes pulse
// trains accordingly.
//
// All builders return a fresh matrix per call and keep no state.
package operator
