package physics

import (
	"log"

	"github.com/lixenwraith/fixphys/vmath"
)

// Resolver corrects a moving circle's velocity against static colliders, one pass per tick
// It holds configuration only; nothing from a call survives into the next
type Resolver struct {
	// Tick is the fixed tick duration used to predict the next position
	Tick vmath.Fixed

	// Debug logs wedge events through the standard logger
	Debug bool
}

// Resolution is the outcome of one Resolve call
type Resolution struct {
	// Velocity is the corrected velocity for this tick
	Velocity vmath.Vec3

	// Correction is the penetration correction to add to the mover's position
	Correction vmath.Vec3

	// Hits are the contacts found at the predicted position, in collider list order
	Hits []Contact

	// Wedged reports that velocity was zeroed because no slide direction escapes the contacts
	Wedged bool

	// Steepest indexes the hit whose normal makes the largest angle with the velocity, -1 without hits
	Steepest int
}

func NewResolver(tick vmath.Fixed) *Resolver {
	return &Resolver{Tick: tick}
}

// Resolve runs the contact pass for mover moving with velocity against statics
// The mover is not modified; callers apply Velocity and Correction themselves
func (r *Resolver) Resolve(mover *Collider, velocity vmath.Vec3, statics []*Collider) Resolution {
	if mover.Kind != ShapeCircle {
		panic(ErrMoverNotCircle)
	}

	res := Resolution{Velocity: velocity, Steepest: -1}
	if velocity.IsZero() {
		return res
	}

	probe := *mover
	probe.Position = vmath.V3Add(mover.Position, vmath.V3Scale(velocity, r.Tick))

	for _, s := range statics {
		if s == mover {
			continue
		}
		if ct, ok := probe.DetectContact(s); ok {
			res.Hits = append(res.Hits, ct)
		}
	}

	switch len(res.Hits) {
	case 0:
		return res

	case 1:
		hit := res.Hits[0]
		res.Velocity = slide(velocity, hit.Normal)
		res.Correction = hit.BorderAdjust
		res.Steepest = 0
		return res
	}

	// Several contacts: slide along the centroid normal unless the velocity points deeper into
	// the notch than the contact normals spread
	var sum vmath.Vec3
	for _, hit := range res.Hits {
		sum = vmath.V3Add(sum, hit.Normal)
	}
	centroid := vmath.V3Div(sum, vmath.FromInt(len(res.Hits)))

	spread := vmath.AngleZero
	var steepest vmath.Angle
	for i, hit := range res.Hits {
		spread = spread.Max(vmath.V3Angle(centroid, hit.Normal))
		a := vmath.V3Angle(velocity, hit.Normal)
		if res.Steepest < 0 || a.Greater(steepest) {
			steepest = a
			res.Steepest = i
		}
	}

	if vmath.V3Angle(vmath.V3Neg(velocity), centroid).Greater(spread) {
		res.Velocity = slide(velocity, vmath.V3Normalize(centroid))
		for _, hit := range res.Hits {
			res.Correction = vmath.V3Add(res.Correction, hit.BorderAdjust)
		}
		return res
	}

	res.Velocity = vmath.V3Zero
	res.Wedged = true
	if r.Debug {
		log.Printf("physics: wedged at %v velocity %v, %d contacts, spread %.1f deg",
			probe.Position, velocity, len(res.Hits), spread.Degrees())
	}
	return res
}

// slide removes the inward component of v when v points back into the surface with normal n
func slide(v, n vmath.Vec3) vmath.Vec3 {
	if vmath.V3Angle(vmath.V3Neg(v), n).Less(vmath.HalfPi) {
		return vmath.V3Project(v, n)
	}
	return v
}
