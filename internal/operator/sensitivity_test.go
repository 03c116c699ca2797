package operator

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"blochsim/internal/bloch"
)

// propagateBase runs the 4x4 operator and returns the magnetization.
func propagateBase(r1, r2 float64, b bloch.Vec, t float64, m bloch.Vec) bloch.Vec {
	x := Propagate(Base(r1, r2, b), t, augment(m))
	return bloch.Vec{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)}
}

func sensitivityState(m bloch.Vec, n int) *mat.VecDense {
	x := mat.NewVecDense(n, nil)
	x.SetVec(0, m.X)
	x.SetVec(1, m.Y)
	x.SetVec(2, m.Z)
	x.SetVec(n-1, 1)
	return x
}

func block(x *mat.VecDense, blk int) bloch.Vec {
	o := 3 * blk
	return bloch.Vec{X: x.AtVec(o), Y: x.AtVec(o + 1), Z: x.AtVec(o + 2)}
}

func TestSensitivityBaseBlockMatchesBase(t *testing.T) {
	r1, r2 := 1.1, 12.0
	b := bloch.Vec{X: 40, Y: -10, Z: 150}
	m := bloch.Vec{X: 0.2, Y: 0.1, Z: 0.8}
	dur := 0.02

	x := Propagate(Sensitivity(r1, r2, b), dur, sensitivityState(m, 10))
	want := propagateBase(r1, r2, b, dur, m)

	if got := block(x, 0); math.Abs(got.X-want.X)+math.Abs(got.Y-want.Y)+math.Abs(got.Z-want.Z) > 1e-10 {
		t.Errorf("state block %v, want base propagation %v", got, want)
	}
}

func TestSensitivityFiniteDifference(t *testing.T) {
	r1, r2 := 1.1, 12.0
	b := bloch.Vec{X: 40, Y: -10, Z: 150}
	m := bloch.Vec{X: 0.2, Y: 0.1, Z: 0.8}
	dur := 0.02
	const eps = 1e-6

	x := Propagate(Sensitivity(r1, r2, b), dur, sensitivityState(m, 10))

	// dM/dR1 block against central difference of the base propagation
	plus := propagateBase(r1+eps, r2, b, dur, m)
	minus := propagateBase(r1-eps, r2, b, dur, m)
	want := r3.Scale(1/(2*eps), r3.Sub(plus, minus))
	if got := block(x, 1); math.Abs(got.X-want.X)+math.Abs(got.Y-want.Y)+math.Abs(got.Z-want.Z) > 1e-6 {
		t.Errorf("dM/dR1 block %v, want finite difference %v", got, want)
	}

	// dM/dR2 block
	plus = propagateBase(r1, r2+eps, b, dur, m)
	minus = propagateBase(r1, r2-eps, b, dur, m)
	want = r3.Scale(1/(2*eps), r3.Sub(plus, minus))
	if got := block(x, 2); math.Abs(got.X-want.X)+math.Abs(got.Y-want.Y)+math.Abs(got.Z-want.Z) > 1e-6 {
		t.Errorf("dM/dR2 block %v, want finite difference %v", got, want)
	}
}

func TestSensitivityB1FiniteDifference(t *testing.T) {
	r1, r2 := 1.0, 15.0
	phase, b1 := 0.7, 2*math.Pi*400
	m := bloch.Vec{X: 0.1, Y: -0.2, Z: 0.9}
	dur := 0.001
	const eps = 1e-7

	s, c := math.Sincos(phase)
	field := func(scale float64) bloch.Vec {
		return bloch.Vec{X: scale * b1 * c, Y: -scale * b1 * s}
	}

	x := Propagate(SensitivityB1(r1, r2, field(1), phase, b1), dur, sensitivityState(m, 13))

	plus := propagateBase(r1, r2, field(1+eps), dur, m)
	minus := propagateBase(r1, r2, field(1-eps), dur, m)
	want := r3.Scale(1/(2*eps), r3.Sub(plus, minus))

	if got := block(x, 3); math.Abs(got.X-want.X)+math.Abs(got.Y-want.Y)+math.Abs(got.Z-want.Z) > 1e-4 {
		t.Errorf("dM/dB1 block %v, want finite difference %v", got, want)
	}
}

func TestSensitivityBlocksStartAtZero(t *testing.T) {
	// With zero time nothing has accumulated: sensitivities stay zero.
	x := Propagate(Sensitivity(1, 10, bloch.Vec{Z: 100}), 0, sensitivityState(bloch.Vec{Z: 1}, 10))
	for blk := 1; blk <= 2; blk++ {
		if v := block(x, blk); v != (bloch.Vec{}) {
			t.Errorf("block %d = %v at t=0, want zero", blk, v)
		}
	}
}
