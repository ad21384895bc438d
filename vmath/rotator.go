package vmath

import (
	"math"
)

// Rotator is an orientation in degrees
// Yaw turns about the up axis (0 = +X, 90 = +Y), pitch tilts the nose up, roll banks
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// NormalizeAxis wraps an angle in degrees into (-180, 180]
func NormalizeAxis(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// Normalized returns the rotator with every axis wrapped into (-180, 180]
func (r Rotator) Normalized() Rotator {
	return Rotator{
		Pitch: NormalizeAxis(r.Pitch),
		Yaw:   NormalizeAxis(r.Yaw),
		Roll:  NormalizeAxis(r.Roll),
	}
}

// Forward returns the unit direction the rotator faces, pitch included
func (r Rotator) Forward() Vec3F {
	sp, cp := math.Sincos(r.Pitch * math.Pi / 180)
	sy, cy := math.Sincos(r.Yaw * math.Pi / 180)
	return Vec3F{X: cp * cy, Y: cp * sy, Z: sp}
}

// YawForward returns the horizontal unit direction for a yaw, Z is always 0
func YawForward(yaw float64) Vec3F {
	s, c := math.Sincos(yaw * math.Pi / 180)
	return Vec3F{X: c, Y: s}
}

// YawRight returns the horizontal unit direction 90 degrees clockwise of yaw seen from above
func YawRight(yaw float64) Vec3F {
	return YawForward(yaw - 90)
}

// RotateYaw rotates a body-relative offset (X forward, Y left, Z up) into world space
func RotateYaw(v Vec3F, yaw float64) Vec3F {
	s, c := math.Sincos(yaw * math.Pi / 180)
	return Vec3F{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// YawOf returns the yaw in degrees of the horizontal part of v
func YawOf(v Vec3F) float64 {
	if math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon {
		return 0
	}
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// RotatorFromDirection returns the rotator facing along v with zero roll
// Zero vector yields the zero rotator
func RotatorFromDirection(v Vec3F) Rotator {
	horiz := math.Hypot(v.X, v.Y)
	if horiz < Epsilon && math.Abs(v.Z) < Epsilon {
		return Rotator{}
	}
	return Rotator{
		Pitch: math.Atan2(v.Z, horiz) * 180 / math.Pi,
		Yaw:   YawOf(v),
	}
}
