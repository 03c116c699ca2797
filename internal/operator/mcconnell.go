package operator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"blochsim/internal/bloch"
)

// Pool holds the physical parameters of one exchanging spin pool.
type Pool struct {
	R1    float64 // longitudinal relaxation rate (1/s)
	R2    float64 // transverse relaxation rate (1/s)
	Omega float64 // chemical-shift offset from the reference frame (rad/s)
	Theta float64 // equilibrium magnetization fraction
}

// McConnell assembles the (1+3P)x(1+3P) operator of the McConnell
// equations for P exchanging pools under the shared field b. Pool p
// sees the field shifted by its chemical offset; its longitudinal
// component relaxes toward M0*Theta_p. The exchange matrix k couples
// each Cartesian component independently: k.At(p, q) is the transfer
// rate into pool p from pool q, and the diagonal k.At(p, p) is the
// caller-balanced outflow (not enforced here).
func McConnell(pools []Pool, k *mat.Dense, b bloch.Vec) *mat.Dense {
	p := len(pools)
	if kr, kc := k.Dims(); kr != p || kc != p {
		panic(fmt.Sprintf("operator: exchange matrix is %dx%d, want %dx%d", kr, kc, p, p))
	}

	n := 1 + 3*p
	a := mat.NewDense(n, n, nil)

	for i, pool := range pools {
		g := b
		g.Z += pool.Omega

		blk := Base(pool.R1, pool.R2, g)
		o := 3 * i
		a.Slice(o, o+3, o, o+3).(*mat.Dense).Copy(blk.Slice(0, 3, 0, 3))

		a.Set(o+2, n-1, bloch.M0*pool.Theta*pool.R1)
	}

	for pi := 0; pi < p; pi++ {
		for q := 0; q < p; q++ {
			for c := 0; c < 3; c++ {
				r, col := 3*pi+c, 3*q+c
				a.Set(r, col, a.At(r, col)+k.At(pi, q))
			}
		}
	}

	return a
}
