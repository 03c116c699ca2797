// Package model exposes the simulation model variants the
// reconstruction layer chooses between. Each variant selects an
// operator dimension and builder from package operator; the engine
// itself stays agnostic of the choice.
package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"blochsim/internal/bloch"
	"blochsim/internal/operator"
)

// RF describes the RF drive during one interval. Amplitude is the
// nominal B1 amplitude in rad/s; zero means free precession.
type RF struct {
	Amplitude float64
	Phase     float64
}

// Model is one simulation variant. Operator returns the evolution
// operator for an interval with effective field b and RF drive rf;
// Equilibrium returns the fully relaxed augmented state (sensitivity
// blocks zero, homogeneous coordinate one).
type Model interface {
	Dim() int
	Operator(b bloch.Vec, rf RF) *mat.Dense
	Equilibrium() *mat.VecDense
	Labels() []string
}

// SinglePool is the plain 4-dimensional Bloch model.
type SinglePool struct {
	R1, R2 float64
}

func (m SinglePool) Dim() int { return 4 }

func (m SinglePool) Operator(b bloch.Vec, _ RF) *mat.Dense {
	return operator.Base(m.R1, m.R2, b)
}

func (m SinglePool) Equilibrium() *mat.VecDense {
	return mat.NewVecDense(4, []float64{0, 0, bloch.M0, 1})
}

func (m SinglePool) Labels() []string { return []string{"Mx", "My", "Mz"} }

// SinglePoolSA augments SinglePool with dM/dR1 and dM/dR2 sensitivity
// blocks (10-dimensional).
type SinglePoolSA struct {
	R1, R2 float64
}

func (m SinglePoolSA) Dim() int { return 10 }

func (m SinglePoolSA) Operator(b bloch.Vec, _ RF) *mat.Dense {
	return operator.Sensitivity(m.R1, m.R2, b)
}

func (m SinglePoolSA) Equilibrium() *mat.VecDense {
	x := mat.NewVecDense(10, nil)
	x.SetVec(2, bloch.M0)
	x.SetVec(9, 1)
	return x
}

func (m SinglePoolSA) Labels() []string {
	return []string{
		"Mx", "My", "Mz",
		"dMx/dR1", "dMy/dR1", "dMz/dR1",
		"dMx/dR2", "dMy/dR2", "dMz/dR2",
	}
}

// SinglePoolSAB1 adds a dM/dB1 sensitivity block (13-dimensional) for
// joint estimation of relaxation rates and RF field inhomogeneity.
type SinglePoolSAB1 struct {
	R1, R2 float64
}

func (m SinglePoolSAB1) Dim() int { return 13 }

func (m SinglePoolSAB1) Operator(b bloch.Vec, rf RF) *mat.Dense {
	return operator.SensitivityB1(m.R1, m.R2, b, rf.Phase, rf.Amplitude)
}

func (m SinglePoolSAB1) Equilibrium() *mat.VecDense {
	x := mat.NewVecDense(13, nil)
	x.SetVec(2, bloch.M0)
	x.SetVec(12, 1)
	return x
}

func (m SinglePoolSAB1) Labels() []string {
	return append(SinglePoolSA{}.Labels(),
		"dMx/dB1", "dMy/dB1", "dMz/dB1")
}

// MultiPool is the McConnell chemical-exchange model over P pools.
type MultiPool struct {
	Pools    []operator.Pool
	Exchange *mat.Dense
}

func (m MultiPool) Dim() int { return 1 + 3*len(m.Pools) }

func (m MultiPool) Operator(b bloch.Vec, _ RF) *mat.Dense {
	return operator.McConnell(m.Pools, m.Exchange, b)
}

func (m MultiPool) Equilibrium() *mat.VecDense {
	x := mat.NewVecDense(m.Dim(), nil)
	for p, pool := range m.Pools {
		x.SetVec(3*p+2, bloch.M0*pool.Theta)
	}
	x.SetVec(m.Dim()-1, 1)
	return x
}

func (m MultiPool) Labels() []string {
	labels := make([]string, 0, 3*len(m.Pools))
	for p := range m.Pools {
		labels = append(labels,
			fmt.Sprintf("Mx%d", p), fmt.Sprintf("My%d", p), fmt.Sprintf("Mz%d", p))
	}
	return labels
}
