package vmath

import (
	"math"
)

// Epsilon is the tolerance below which a vector length is treated as zero
const Epsilon = 1e-8

// Vec3F is a float64 3D vector for world-space positions, velocities and normals
// Z is up; X/Y span the sea plane
type Vec3F struct {
	X, Y, Z float64
}

// UpF is the world up axis
var UpF = Vec3F{Z: 1}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag < Epsilon {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FFlatten2D drops the vertical component and normalizes the rest
// Returns the zero vector when the horizontal part is degenerate (floor/ceiling normals)
func V3FFlatten2D(v Vec3F) Vec3F {
	return V3FNormalize(Vec3F{X: v.X, Y: v.Y})
}

// V3FPlaneProject projects v onto the plane through the origin orthogonal to normal
// normal is expected unit length; a zero normal leaves v unchanged
func V3FPlaneProject(v, normal Vec3F) Vec3F {
	return V3FSub(v, V3FScale(normal, V3FDot(v, normal)))
}

// V3FClampMagnitude limits vector length to maxMag
func V3FClampMagnitude(v Vec3F, maxMag float64) Vec3F {
	magSq := V3FMagSq(v)
	if magSq <= maxMag*maxMag {
		return v
	}
	return V3FScale(V3FNormalize(v), maxMag)
}

// V3FDist returns the distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FNearlyEqual compares two vectors component-wise within tol
func V3FNearlyEqual(a, b Vec3F, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
