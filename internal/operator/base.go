package operator

import (
	"gonum.org/v1/gonum/mat"

	"blochsim/internal/bloch"
)

// Base returns the 4x4 operator A with d/dt [Mx My Mz 1] = A [Mx My Mz 1].
// Rows 0-2 combine the field cross product with relaxation; the
// equilibrium forcing M0*R1 sits in the homogeneous column, and the
// last row is zero so the "1" coordinate stays fixed.
func Base(r1, r2 float64, b bloch.Vec) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		-r2, b.Z, -b.Y, 0,
		-b.Z, -r2, b.X, 0,
		b.Y, -b.X, -r1, bloch.M0 * r1,
		0, 0, 0, 0,
	})
}

// Exponential computes the propagator exp(t*a) for one interval.
func Exponential(a mat.Matrix, t float64) *mat.Dense {
	var scaled, e mat.Dense
	scaled.Scale(t, a)
	e.Exp(&scaled)
	return &e
}

// Propagate advances the augmented state x by t seconds under the
// operator a.
func Propagate(a mat.Matrix, t float64, x *mat.VecDense) *mat.VecDense {
	p := Exponential(a, t)
	n, _ := p.Dims()
	out := mat.NewVecDense(n, nil)
	out.MulVec(p, x)
	return out
}
