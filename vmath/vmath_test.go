package vmath

import (
	"math"
	"testing"
)

func TestV3FPlaneProject(t *testing.T) {
	n := V3FNormalize(Vec3F{X: -1, Y: 1})
	got := V3FPlaneProject(Vec3F{X: 100}, n)
	if !V3FNearlyEqual(got, Vec3F{X: 50, Y: 50}, 1e-9) {
		t.Errorf("Expected (50,50,0), got %+v", got)
	}
	if d := V3FDot(got, n); math.Abs(d) > 1e-9 {
		t.Errorf("Expected projection orthogonal to normal, dot=%f", d)
	}
}

func TestV3FFlatten2D(t *testing.T) {
	got := V3FFlatten2D(Vec3F{X: 3, Y: 4, Z: 100})
	if !V3FNearlyEqual(got, Vec3F{X: 0.6, Y: 0.8}, 1e-12) {
		t.Errorf("Expected (0.6,0.8,0), got %+v", got)
	}
	if got := V3FFlatten2D(Vec3F{Z: 1}); got != (Vec3F{}) {
		t.Errorf("Expected vertical normal to flatten to zero, got %+v", got)
	}
}

func TestV3FClampMagnitude(t *testing.T) {
	got := V3FClampMagnitude(Vec3F{X: 30, Y: 40}, 10)
	if math.Abs(V3FMag(got)-10) > 1e-9 {
		t.Errorf("Expected magnitude 10, got %f", V3FMag(got))
	}
	small := Vec3F{X: 1}
	if V3FClampMagnitude(small, 10) != small {
		t.Error("Expected short vector unchanged")
	}
}

func TestNormalizeAxis(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		180:  180,
		-180: 180,
		270:  -90,
		-270: 90,
		725:  5,
	}
	for in, want := range cases {
		if got := NormalizeAxis(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("NormalizeAxis(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestYawForwardIsHorizontal(t *testing.T) {
	for yaw := -180.0; yaw <= 180; yaw += 15 {
		f := YawForward(yaw)
		if f.Z != 0 {
			t.Errorf("Expected zero vertical component at yaw %v, got %v", yaw, f.Z)
		}
		if math.Abs(V3FMag(f)-1) > 1e-12 {
			t.Errorf("Expected unit forward at yaw %v, got %v", yaw, V3FMag(f))
		}
		if math.Abs(NormalizeAxis(YawOf(f)-yaw)) > 1e-9 {
			t.Errorf("Expected YawOf to invert YawForward at %v, got %v", yaw, YawOf(f))
		}
	}
}

func TestRotateYaw(t *testing.T) {
	got := RotateYaw(Vec3F{X: 90, Z: 10}, 90)
	if !V3FNearlyEqual(got, Vec3F{Y: 90, Z: 10}, 1e-9) {
		t.Errorf("Expected (0,90,10), got %+v", got)
	}
}

func TestRotatorFromDirection(t *testing.T) {
	r := RotatorFromDirection(Vec3F{X: 1, Z: 1})
	if math.Abs(r.Pitch-45) > 1e-9 || r.Yaw != 0 {
		t.Errorf("Expected pitch 45 yaw 0, got %+v", r)
	}
	if !V3FNearlyEqual(r.Forward(), V3FNormalize(Vec3F{X: 1, Z: 1}), 1e-9) {
		t.Errorf("Expected Forward to round-trip, got %+v", r.Forward())
	}
}
