package bloch

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// StateJacobian returns the 3x3 derivative of the Bloch equation with
// respect to magnetization: column i is the rotation of basis vector
// e_i by the field b, minus the relaxation rate on the diagonal.
func StateJacobian(r1, r2 float64, b Vec) *mat.Dense {
	j := mat.NewDense(3, 3, nil)

	for i, e := range []Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		col := r3.Cross(e, b)
		j.Set(0, i, col.X)
		j.Set(1, i, col.Y)
		j.Set(2, i, col.Z)
	}

	j.Set(0, 0, j.At(0, 0)-r2)
	j.Set(1, 1, j.At(1, 1)-r2)
	j.Set(2, 2, j.At(2, 2)-r1)
	return j
}

// RateJacobian returns the 2x3 derivative of the Bloch equation with
// respect to the relaxation rates at fixed magnetization m: row 0 is
// d/dR1, row 1 is d/dR2.
func RateJacobian(m Vec) *mat.Dense {
	return mat.NewDense(2, 3, []float64{
		0, 0, -(m.Z - M0),
		-m.X, -m.Y, 0,
	})
}

// RateB1Jacobian extends RateJacobian with a third row for the
// derivative with respect to the B1 scale factor of an RF pulse with
// nominal amplitude b1 at the given phase.
func RateB1Jacobian(m Vec, phase, b1 float64) *mat.Dense {
	s, c := math.Sincos(phase)
	return mat.NewDense(3, 3, []float64{
		0, 0, -(m.Z - M0),
		-m.X, -m.Y, 0,
		s * m.Z * b1, c * m.Z * b1, (-s*m.X - c*m.Y) * b1,
	})
}
