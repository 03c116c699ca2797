package operator

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"blochsim/internal/bloch"
)

// stampBlocks places the 3x3 state Jacobian on every 3x3 diagonal block
// of a, one block per augmented quantity (state plus one block per
// parameter sensitivity).
func stampBlocks(a *mat.Dense, blocks int, r1, r2 float64, b bloch.Vec) {
	j := bloch.StateJacobian(r1, r2, b)
	for blk := 0; blk < blocks; blk++ {
		o := 3 * blk
		a.Slice(o, o+3, o, o+3).(*mat.Dense).Copy(j)
	}
}

// Sensitivity returns the 10x10 operator propagating the state block
// together with its dM/dR1 and dM/dR2 blocks. Each sensitivity block
// obeys the same linear dynamics as the state and is forced by
// chain-rule couplings back to block 0: the derivative of the
// relaxation term with respect to its own rate is the state itself.
func Sensitivity(r1, r2 float64, b bloch.Vec) *mat.Dense {
	const n = 10
	a := mat.NewDense(n, n, nil)
	stampBlocks(a, 3, r1, r2, b)

	// equilibrium forcing of the state block
	a.Set(2, n-1, bloch.M0*r1)

	// dM/dR1 block: d/dR1 of -R1*(Mz - M0)
	a.Set(5, 2, -1)
	a.Set(5, n-1, bloch.M0)

	// dM/dR2 block: d/dR2 of -R2*(Mx, My)
	a.Set(6, 0, -1)
	a.Set(7, 1, -1)

	return a
}

// SensitivityB1 returns the 13x13 operator extending Sensitivity with a
// dM/dB1 block for an RF pulse of nominal amplitude b1 at the given
// phase. The coupling terms are the derivative of the cross product
// with respect to the B1 scale factor.
func SensitivityB1(r1, r2 float64, b bloch.Vec, phase, b1 float64) *mat.Dense {
	const n = 13
	a := mat.NewDense(n, n, nil)
	stampBlocks(a, 4, r1, r2, b)

	a.Set(2, n-1, bloch.M0*r1)

	a.Set(5, 2, -1)
	a.Set(5, n-1, bloch.M0)

	a.Set(6, 0, -1)
	a.Set(7, 1, -1)

	// dM/dB1 block
	s, c := math.Sincos(phase)
	a.Set(9, 2, s*b1)
	a.Set(10, 2, c*b1)
	a.Set(11, 0, -s*b1)
	a.Set(11, 1, -c*b1)

	return a
}
