package bloch

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a 3-vector in the rotating reference frame, used for both
// magnetization (Mx, My, Mz) and effective fields (angular velocity).
type Vec = r3.Vec

// M0 is the equilibrium longitudinal magnetization.
const M0 = 1.0

// Rotations in a RIGHT-handed coordinate system with CLOCKWISE rotation
// for angle > 0, matching the clockwise precession of the Bloch equation.
//
//	      z
//	      |
//	      |_ _ _ _ y
//	     /
//	    x

// RotX rotates v about the x axis.
func RotX(v Vec, angle float64) Vec {
	s, c := math.Sincos(angle)
	return Vec{
		X: v.X,
		Y: v.Y*c + v.Z*s,
		Z: -v.Y*s + v.Z*c,
	}
}

// RotY rotates v about the y axis.
func RotY(v Vec, angle float64) Vec {
	s, c := math.Sincos(angle)
	return Vec{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.X*s + v.Z*c,
	}
}

// RotZ rotates v about the z axis.
func RotZ(v Vec, angle float64) Vec {
	s, c := math.Sincos(angle)
	return Vec{
		X: v.X*c + v.Y*s,
		Y: -v.X*s + v.Y*c,
		Z: v.Z,
	}
}
