package physics

import (
	"math"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/vmath"
)

// SweepHit is the result of moving a shape along a displacement with collision testing
type SweepHit struct {
	// Blocked is true when a blocking contact occurred before the full displacement
	Blocked bool

	// Time is the fraction of the displacement completed before contact, 0 = immediate, 1 = no contact
	Time float64

	// Normal is the contact surface normal pointing away from the obstacle, zero when unblocked
	Normal vmath.Vec3F

	// Location is the mover's center at the contact point
	Location vmath.Vec3F

	// Other is the entity that was hit, core.NoEntity when unblocked
	Other core.Entity
}

// NoHit returns an unblocked sweep result that completes the full displacement
func NoHit(start, delta vmath.Vec3F) SweepHit {
	return SweepHit{
		Time:     1,
		Location: vmath.V3FAdd(start, delta),
	}
}

// Box is an axis-aligned bounding box in world space
type Box struct {
	Min, Max vmath.Vec3F
}

// Center returns the box midpoint
func (b Box) Center() vmath.Vec3F {
	return vmath.V3FScale(vmath.V3FAdd(b.Min, b.Max), 0.5)
}

// SweepSphereBox sweeps a sphere from start along delta against box
// Returns contact time in [0,1], outward face normal and whether contact occurred
// A sphere already overlapping the box reports time 0 unless it is moving out of it
func SweepSphereBox(start, delta vmath.Vec3F, radius float64, box Box) (float64, vmath.Vec3F, bool) {
	r := vmath.Vec3F{X: radius, Y: radius, Z: radius}
	lo := vmath.V3FSub(box.Min, r)
	hi := vmath.V3FAdd(box.Max, r)

	s := [3]float64{start.X, start.Y, start.Z}
	d := [3]float64{delta.X, delta.Y, delta.Z}
	l := [3]float64{lo.X, lo.Y, lo.Z}
	h := [3]float64{hi.X, hi.Y, hi.Z}

	tEnter := math.Inf(-1)
	tExit := math.Inf(1)
	enterAxis := -1
	enterSign := 0.0

	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < vmath.Epsilon {
			if s[i] < l[i] || s[i] > h[i] {
				return 0, vmath.Vec3F{}, false
			}
			continue
		}
		inv := 1 / d[i]
		t1 := (l[i] - s[i]) * inv
		t2 := (h[i] - s[i]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tEnter {
			tEnter = t1
			enterAxis = i
			enterSign = sign
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, vmath.Vec3F{}, false
		}
	}

	if tExit < 0 || tEnter > 1 {
		return 0, vmath.Vec3F{}, false
	}

	if tEnter < 0 || enterAxis < 0 {
		// Starting overlapped: push out along the axis of least penetration
		normal := leastPenetrationNormal(s, l, h)
		if vmath.V3FDot(delta, normal) >= 0 {
			return 0, vmath.Vec3F{}, false
		}
		return 0, normal, true
	}

	var normal vmath.Vec3F
	switch enterAxis {
	case 0:
		normal.X = enterSign
	case 1:
		normal.Y = enterSign
	case 2:
		normal.Z = enterSign
	}
	return tEnter, normal, true
}

func leastPenetrationNormal(s, l, h [3]float64) vmath.Vec3F {
	best := math.Inf(1)
	axis, sign := 0, 1.0
	for i := 0; i < 3; i++ {
		if dl := s[i] - l[i]; dl < best {
			best, axis, sign = dl, i, -1
		}
		if dh := h[i] - s[i]; dh < best {
			best, axis, sign = dh, i, 1
		}
	}
	var n vmath.Vec3F
	switch axis {
	case 0:
		n.X = sign
	case 1:
		n.Y = sign
	case 2:
		n.Z = sign
	}
	return n
}

// SweepSphereSphere sweeps a sphere from start along delta against a static sphere
// Returns contact time in [0,1], normal pointing from the static sphere to the mover, and contact flag
func SweepSphereSphere(start, delta vmath.Vec3F, radius float64, center vmath.Vec3F, otherRadius float64) (float64, vmath.Vec3F, bool) {
	rr := radius + otherRadius
	m := vmath.V3FSub(start, center)
	c := vmath.V3FMagSq(m) - rr*rr

	if c <= 0 {
		normal := vmath.V3FNormalize(m)
		if normal == (vmath.Vec3F{}) {
			normal = vmath.V3FScale(vmath.V3FNormalize(delta), -1)
		}
		if vmath.V3FDot(delta, normal) >= 0 {
			return 0, vmath.Vec3F{}, false
		}
		return 0, normal, true
	}

	a := vmath.V3FMagSq(delta)
	if a < vmath.Epsilon {
		return 0, vmath.Vec3F{}, false
	}
	b := vmath.V3FDot(m, delta)
	if b >= 0 {
		return 0, vmath.Vec3F{}, false
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, vmath.Vec3F{}, false
	}
	t := (-b - math.Sqrt(disc)) / a
	if t > 1 {
		return 0, vmath.Vec3F{}, false
	}
	if t < 0 {
		t = 0
	}

	contact := vmath.V3FAdd(start, vmath.V3FScale(delta, t))
	return t, vmath.V3FNormalize(vmath.V3FSub(contact, center)), true
}

// Deflection returns the slide offset for the part of delta left after a blocking hit
// The remainder delta*(1-time) is projected onto the plane orthogonal to the
// horizontal component of the contact normal, so walls redirect instead of stopping
func Deflection(delta vmath.Vec3F, hit SweepHit) vmath.Vec3F {
	if !hit.Blocked {
		return vmath.Vec3F{}
	}
	remaining := vmath.V3FScale(delta, 1-clamp01(hit.Time))
	return vmath.V3FPlaneProject(remaining, vmath.V3FFlatten2D(hit.Normal))
}

// ContactPoint returns where a mover ends after a sweep without deflection
// Unblocked moves complete the full delta; blocked moves stop at the hit fraction
func ContactPoint(start, delta vmath.Vec3F, hit SweepHit) vmath.Vec3F {
	if !hit.Blocked {
		return vmath.V3FAdd(start, delta)
	}
	return vmath.V3FAdd(start, vmath.V3FScale(delta, clamp01(hit.Time)))
}

// ResolveSweptMove applies a sweep result to start
// Unblocked moves complete the full delta; blocked moves stop at contact and add the deflection unswept
func ResolveSweptMove(start, delta vmath.Vec3F, hit SweepHit) (end, deflection vmath.Vec3F) {
	if !hit.Blocked {
		return vmath.V3FAdd(start, delta), vmath.Vec3F{}
	}
	end = ContactPoint(start, delta, hit)
	deflection = Deflection(delta, hit)
	return vmath.V3FAdd(end, deflection), deflection
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
