package sequence

import (
	"gonum.org/v1/gonum/spatial/r3"

	"blochsim/internal/bloch"
)

// StepRK4 advances the plain Bloch equation by one classical
// Runge-Kutta step. The matrix-exponential path is exact for
// piecewise-constant fields; this stepper is an independent reference
// used to cross-check it.
func StepRK4(m bloch.Vec, r1, r2 float64, b bloch.Vec, dt float64) bloch.Vec {
	k1 := bloch.Derivative(m, r1, r2, b)
	k2 := bloch.Derivative(r3.Add(m, r3.Scale(dt/2, k1)), r1, r2, b)
	k3 := bloch.Derivative(r3.Add(m, r3.Scale(dt/2, k2)), r1, r2, b)
	k4 := bloch.Derivative(r3.Add(m, r3.Scale(dt, k3)), r1, r2, b)

	sum := r3.Add(r3.Add(k1, r3.Scale(2, k2)), r3.Add(r3.Scale(2, k3), k4))
	return r3.Add(m, r3.Scale(dt/6, sum))
}
