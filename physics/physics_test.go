package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/minigold/vmath"
)

func TestResolveSweptMove_Unblocked(t *testing.T) {
	start := vmath.Vec3F{X: 1, Y: 2, Z: 3}
	delta := vmath.Vec3F{X: 10, Y: -5}

	end, defl := ResolveSweptMove(start, delta, NoHit(start, delta))
	if end != vmath.V3FAdd(start, delta) {
		t.Errorf("Expected full displacement, got %+v", end)
	}
	if defl != (vmath.Vec3F{}) {
		t.Errorf("Expected no deflection, got %+v", defl)
	}
}

func TestResolveSweptMove_BlockedAtStartSlides(t *testing.T) {
	delta := vmath.Vec3F{X: 100}
	hit := SweepHit{Blocked: true, Time: 0, Normal: vmath.Vec3F{X: -1, Y: 1, Z: 3}}

	end, defl := ResolveSweptMove(vmath.Vec3F{}, delta, hit)
	if !vmath.V3FNearlyEqual(defl, vmath.Vec3F{X: 50, Y: 50}, 1e-9) {
		t.Errorf("Expected deflection (50,50,0), got %+v", defl)
	}
	if end != defl {
		t.Errorf("Expected end at start+deflection, got %+v", end)
	}
}

func TestDeflection_ScalesWithRemainingFraction(t *testing.T) {
	delta := vmath.Vec3F{X: 100, Y: 100}
	hit := SweepHit{Blocked: true, Time: 0.75, Normal: vmath.Vec3F{X: -1}}

	got := Deflection(delta, hit)
	if !vmath.V3FNearlyEqual(got, vmath.Vec3F{Y: 25}, 1e-9) {
		t.Errorf("Expected (0,25,0), got %+v", got)
	}
}

func TestDeflection_FloorNormalYieldsRemainder(t *testing.T) {
	delta := vmath.Vec3F{X: 10}
	hit := SweepHit{Blocked: true, Time: 0.5, Normal: vmath.Vec3F{Z: 1}}

	got := Deflection(delta, hit)
	if !vmath.V3FNearlyEqual(got, vmath.Vec3F{X: 5}, 1e-9) {
		t.Errorf("Expected degenerate flattened normal to keep the remainder, got %+v", got)
	}
}

func TestSweepSphereBox(t *testing.T) {
	box := Box{Min: vmath.Vec3F{X: 10, Y: -1, Z: -1}, Max: vmath.Vec3F{X: 12, Y: 1, Z: 1}}

	tHit, n, ok := SweepSphereBox(vmath.Vec3F{}, vmath.Vec3F{X: 20}, 2, box)
	if !ok {
		t.Fatal("Expected contact")
	}
	if math.Abs(tHit-0.4) > 1e-12 {
		t.Errorf("Expected time 0.4, got %f", tHit)
	}
	if n != (vmath.Vec3F{X: -1}) {
		t.Errorf("Expected -X normal, got %+v", n)
	}

	if _, _, ok := SweepSphereBox(vmath.Vec3F{}, vmath.Vec3F{X: 5}, 2, box); ok {
		t.Error("Expected no contact when falling short")
	}
	if _, _, ok := SweepSphereBox(vmath.Vec3F{Y: 10}, vmath.Vec3F{X: 20}, 2, box); ok {
		t.Error("Expected no contact when passing beside")
	}
}

func TestSweepSphereBox_OverlapOnlyBlocksInward(t *testing.T) {
	box := Box{Min: vmath.Vec3F{X: 0, Y: -10, Z: -10}, Max: vmath.Vec3F{X: 10, Y: 10, Z: 10}}
	start := vmath.Vec3F{X: -1}

	if _, _, ok := SweepSphereBox(start, vmath.Vec3F{X: -5}, 2, box); ok {
		t.Error("Expected moving out of overlap to be free")
	}
	tHit, n, ok := SweepSphereBox(start, vmath.Vec3F{X: 5}, 2, box)
	if !ok || tHit != 0 || n != (vmath.Vec3F{X: -1}) {
		t.Errorf("Expected immediate -X contact, got t=%f n=%+v ok=%v", tHit, n, ok)
	}
}

func TestSweepSphereSphere(t *testing.T) {
	tHit, n, ok := SweepSphereSphere(vmath.Vec3F{}, vmath.Vec3F{X: 100}, 5, vmath.Vec3F{X: 50}, 5)
	if !ok {
		t.Fatal("Expected contact")
	}
	if math.Abs(tHit-0.4) > 1e-12 {
		t.Errorf("Expected time 0.4, got %f", tHit)
	}
	if !vmath.V3FNearlyEqual(n, vmath.Vec3F{X: -1}, 1e-12) {
		t.Errorf("Expected -X normal, got %+v", n)
	}

	if _, _, ok := SweepSphereSphere(vmath.Vec3F{}, vmath.Vec3F{X: -100}, 5, vmath.Vec3F{X: 50}, 5); ok {
		t.Error("Expected no contact moving away")
	}
}

func TestBallisticStep(t *testing.T) {
	gravity := vmath.Vec3F{Z: -1000}
	vel, disp := BallisticStep(vmath.Vec3F{X: 100}, gravity, 0.5, 0, 0.1)
	if !vmath.V3FNearlyEqual(vel, vmath.Vec3F{X: 100, Z: -50}, 1e-9) {
		t.Errorf("Expected (100,0,-50), got %+v", vel)
	}
	if !vmath.V3FNearlyEqual(disp, vmath.Vec3F{X: 10, Z: -5}, 1e-9) {
		t.Errorf("Expected (10,0,-5), got %+v", disp)
	}

	vel, _ = BallisticStep(vmath.Vec3F{X: 100}, gravity, 1, 100, 1)
	if math.Abs(vmath.V3FMag(vel)-100) > 1e-9 {
		t.Errorf("Expected speed capped to 100, got %f", vmath.V3FMag(vel))
	}
}

func TestLaunchVelocity(t *testing.T) {
	v := LaunchVelocity(vmath.Rotator{}, 5000, 10000)
	if v != (vmath.Vec3F{X: 5000}) {
		t.Errorf("Expected (5000,0,0), got %+v", v)
	}
	v = LaunchVelocity(vmath.Rotator{}, 20000, 10000)
	if v.X != 10000 {
		t.Errorf("Expected capped 10000, got %f", v.X)
	}
}

func TestApplyImpulse(t *testing.T) {
	got := ApplyImpulse(vmath.Vec3F{X: 1}, vmath.Vec3F{X: 10}, 2)
	if got != (vmath.Vec3F{X: 6}) {
		t.Errorf("Expected (6,0,0), got %+v", got)
	}
	got = ApplyImpulse(vmath.Vec3F{}, vmath.Vec3F{Y: 3}, 0)
	if got != (vmath.Vec3F{Y: 3}) {
		t.Errorf("Expected unit mass fallback, got %+v", got)
	}
}
