package bloch

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const fdEps = 1e-6

// central finite difference of Derivative along one direction
func fdState(m Vec, r1, r2 float64, b Vec, dir Vec) Vec {
	plus := Derivative(r3.Add(m, r3.Scale(fdEps, dir)), r1, r2, b)
	minus := Derivative(r3.Add(m, r3.Scale(-fdEps, dir)), r1, r2, b)
	return r3.Scale(1/(2*fdEps), r3.Sub(plus, minus))
}

func TestStateJacobianFiniteDifference(t *testing.T) {
	m := Vec{X: 0.3, Y: -0.1, Z: 0.7}
	r1, r2 := 1.1, 14.0
	b := Vec{X: 50, Y: -20, Z: 200}

	j := StateJacobian(r1, r2, b)

	for col, dir := range []Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		want := fdState(m, r1, r2, b, dir)
		got := Vec{X: j.At(0, col), Y: j.At(1, col), Z: j.At(2, col)}
		if !vecClose(got, want, 1e-6) {
			t.Errorf("column %d = %v, want finite difference %v", col, got, want)
		}
	}
}

func TestRateJacobianFiniteDifference(t *testing.T) {
	m := Vec{X: 0.3, Y: -0.1, Z: 0.7}
	r1, r2 := 1.1, 14.0
	b := Vec{X: 50, Y: -20, Z: 200}

	j := RateJacobian(m)

	// row 0: d/dR1
	plus := Derivative(m, r1+fdEps, r2, b)
	minus := Derivative(m, r1-fdEps, r2, b)
	want := r3.Scale(1/(2*fdEps), r3.Sub(plus, minus))
	got := Vec{X: j.At(0, 0), Y: j.At(0, 1), Z: j.At(0, 2)}
	if !vecClose(got, want, 1e-6) {
		t.Errorf("dR1 row = %v, want %v", got, want)
	}

	// row 1: d/dR2
	plus = Derivative(m, r1, r2+fdEps, b)
	minus = Derivative(m, r1, r2-fdEps, b)
	want = r3.Scale(1/(2*fdEps), r3.Sub(plus, minus))
	got = Vec{X: j.At(1, 0), Y: j.At(1, 1), Z: j.At(1, 2)}
	if !vecClose(got, want, 1e-6) {
		t.Errorf("dR2 row = %v, want %v", got, want)
	}
}

func TestRateB1JacobianFiniteDifference(t *testing.T) {
	m := Vec{X: 0.3, Y: -0.1, Z: 0.7}
	r1, r2 := 1.1, 14.0
	phase, b1 := 0.6, 2*math.Pi*300

	j := RateB1Jacobian(m, phase, b1)

	// The B1 row is the derivative with respect to the dimensionless
	// scale s of the drive field b(s) = s * b1 * (cos p, -sin p, 0),
	// evaluated at s = 1.
	s, c := math.Sincos(phase)
	field := func(scale float64) Vec {
		return Vec{X: scale * b1 * c, Y: -scale * b1 * s}
	}
	plus := Derivative(m, r1, r2, field(1+fdEps))
	minus := Derivative(m, r1, r2, field(1-fdEps))
	want := r3.Scale(1/(2*fdEps), r3.Sub(plus, minus))

	got := Vec{X: j.At(2, 0), Y: j.At(2, 1), Z: j.At(2, 2)}
	if !vecClose(got, want, 1e-5) {
		t.Errorf("dB1 row = %v, want finite difference %v", got, want)
	}

	// rows 0-1 match RateJacobian
	rates := RateJacobian(m)
	for r := 0; r < 2; r++ {
		for col := 0; col < 3; col++ {
			if j.At(r, col) != rates.At(r, col) {
				t.Errorf("row %d col %d = %v, want %v", r, col, j.At(r, col), rates.At(r, col))
			}
		}
	}
}
