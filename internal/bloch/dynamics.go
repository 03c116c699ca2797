package bloch

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Derivative evaluates the Bloch equation
//
//	dM/dt = M x B - (R2*Mx, R2*My, R1*(Mz - M0))
//
// for magnetization m under the effective field b (rad/s).
func Derivative(m Vec, r1, r2 float64, b Vec) Vec {
	d := r3.Cross(m, b)
	d.X -= m.X * r2
	d.Y -= m.Y * r2
	d.Z -= (m.Z - M0) * r1
	return d
}

// Relax propagates m over t seconds of free precession and relaxation.
// Valid only for a purely longitudinal field; a nonzero transverse
// component is a discretization bug in the caller and panics.
func Relax(m Vec, t, r1, r2 float64, b Vec) Vec {
	if b.X != 0 || b.Y != 0 {
		panic("bloch: Relax requires a purely longitudinal field")
	}

	out := RotZ(m, b.Z*t)

	e2 := math.Exp(-t * r2)
	out.X *= e2
	out.Y *= e2
	out.Z += (M0 - m.Z) * (1 - math.Exp(-t*r1))
	return out
}

// Excite propagates m through an on-resonance RF pulse of duration t,
// ignoring relaxation (short-pulse approximation). A nonzero
// longitudinal field component panics.
func Excite(m Vec, t, r1, r2 float64, b Vec) Vec {
	if b.Z != 0 {
		panic("bloch: Excite requires zero longitudinal field")
	}

	return RotX(m, b.X*t)
}

// ExcitePhased applies an RF pulse of the given flip angle at an
// arbitrary phase: rotate by -phase about z, by angle about x, then
// back by +phase about z. Relaxation is ignored.
func ExcitePhased(m Vec, angle, phase float64) Vec {
	return RotZ(RotX(RotZ(m, -phase), angle), phase)
}
