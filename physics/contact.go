package physics

import (
	"github.com/lixenwraith/fixphys/vmath"
)

// Contact is a transient, per-tick contact record
// Normal points from Collider toward the tested body; BorderAdjust is the displacement that
// moves the tested body out of Collider
type Contact struct {
	Collider     *Collider
	Normal       vmath.Vec3
	BorderAdjust vmath.Vec3
}

// mirror expresses the same contact from the other body's side
func (ct Contact) mirror(other *Collider) Contact {
	return Contact{
		Collider:     other,
		Normal:       vmath.V3Neg(ct.Normal),
		BorderAdjust: vmath.V3Neg(ct.BorderAdjust),
	}
}

// DetectContact tests c against other, dispatching on the other collider's shape
func (c *Collider) DetectContact(other *Collider) (Contact, bool) {
	switch other.Kind {
	case ShapeBox:
		return c.DetectBox(other)
	case ShapeCircle:
		return c.DetectCircle(other)
	}
	panic(ErrUnknownShape)
}

// DetectBox tests c against a box. Box against box has no narrow phase and never reports.
func (c *Collider) DetectBox(box *Collider) (Contact, bool) {
	switch c.Kind {
	case ShapeCircle:
		return circleVsBox(c, box)
	case ShapeBox:
		return Contact{}, false
	}
	panic(ErrUnknownShape)
}

// DetectCircle tests c against a circle. The box side is the mirror of circleVsBox so both
// orderings share one computation.
func (c *Collider) DetectCircle(circle *Collider) (Contact, bool) {
	switch c.Kind {
	case ShapeCircle:
		return circleVsCircle(c, circle)
	case ShapeBox:
		ct, ok := circleVsBox(circle, c)
		if !ok {
			return Contact{}, false
		}
		return ct.mirror(circle), true
	}
	panic(ErrUnknownShape)
}

// circleVsBox clamps the circle center into the box frame to find the closest box point
func circleVsBox(circle, box *Collider) (Contact, bool) {
	offset := vmath.V3Sub(circle.Position, box.Position)

	closest := box.Position
	for i, axis := range box.axes {
		h := box.halfExtents[i]
		proj := vmath.Clamp(vmath.V3Dot(offset, axis), -h, h)
		closest = vmath.V3Add(closest, vmath.V3Scale(axis, proj))
	}

	diff := vmath.V3Sub(circle.Position, closest)
	distSq := vmath.V3MagSq(diff)
	if distSq >= circle.radius.Mul(circle.radius) {
		return Contact{}, false
	}

	// A center inside the box (or within Q10 resolution of its surface) yields a zero normal
	// and a zero adjust
	dist := vmath.Sqrt(distSq)
	normal := vmath.V3Normalize(diff)
	return Contact{
		Collider:     box,
		Normal:       normal,
		BorderAdjust: vmath.V3Scale(normal, circle.radius-dist),
	}, true
}

func circleVsCircle(a, b *Collider) (Contact, bool) {
	diff := vmath.V3Sub(a.Position, b.Position)
	reach := a.radius + b.radius
	distSq := vmath.V3MagSq(diff)
	if distSq >= reach.Mul(reach) {
		return Contact{}, false
	}

	dist := vmath.Sqrt(distSq)
	normal := vmath.V3Normalize(diff)
	return Contact{
		Collider:     b,
		Normal:       normal,
		BorderAdjust: vmath.V3Scale(normal, reach-dist),
	}, true
}
