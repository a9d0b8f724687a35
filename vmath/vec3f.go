package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for rendering and debug overlays only
// Nothing built from a Vec3F re-enters the fixed domain
type Vec3F struct {
	X, Y, Z float64
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// V3ToFloat converts Q10 Vec3 to Vec3F
func V3ToFloat(v Vec3) Vec3F {
	return Vec3F{
		X: v.X.Float(),
		Y: v.Y.Float(),
		Z: v.Z.Float(),
	}
}
