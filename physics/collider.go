package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/fixphys/vmath"
)

var (
	// ErrInvalidDescriptor wraps every descriptor validation failure
	ErrInvalidDescriptor = errors.New("physics: invalid collider descriptor")

	// ErrUnknownShape is raised with panic when a collider carries a kind outside the closed set
	ErrUnknownShape = errors.New("physics: unknown shape kind")

	// ErrMoverNotCircle is raised with panic when the resolver is handed a non-circle mover
	ErrMoverNotCircle = errors.New("physics: moving collider must be a circle")
)

// ShapeKind is the closed set of collider shapes. The zero value is invalid so an
// uninitialized descriptor never passes for a real shape.
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota + 1
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCircle:
		return "circle"
	}
	return fmt.Sprintf("shape(%d)", uint8(k))
}

// Descriptor is authoring-time collider data produced by level geometry extraction
// Box fields are ignored for circles and Radius is ignored for boxes
type Descriptor struct {
	Kind     ShapeKind
	Position vmath.Vec3

	// Box: two in-plane local axes and the half extent along each
	AxisU, AxisV vmath.Vec3
	HalfU, HalfV vmath.Fixed

	// Circle
	Radius vmath.Fixed
}

// Collider is a Box or Circle built once from a Descriptor
// Position is owned and updated by the gameplay object holding the collider
type Collider struct {
	Kind     ShapeKind
	Position vmath.Vec3

	axes        [2]vmath.Vec3
	halfExtents [2]vmath.Fixed
	radius      vmath.Fixed
}

// NewCollider validates d and builds the matching shape. Box axes are normalized.
func NewCollider(d Descriptor) (*Collider, error) {
	switch d.Kind {
	case ShapeBox:
		u, v := vmath.V3Normalize(d.AxisU), vmath.V3Normalize(d.AxisV)
		if u.IsZero() || v.IsZero() {
			return nil, fmt.Errorf("%w: box axis has zero length", ErrInvalidDescriptor)
		}
		if d.HalfU <= 0 || d.HalfV <= 0 {
			return nil, fmt.Errorf("%w: box half extents must be positive, got %v x %v", ErrInvalidDescriptor, d.HalfU, d.HalfV)
		}
		return &Collider{
			Kind:        ShapeBox,
			Position:    d.Position,
			axes:        [2]vmath.Vec3{u, v},
			halfExtents: [2]vmath.Fixed{d.HalfU, d.HalfV},
		}, nil

	case ShapeCircle:
		if d.Radius <= 0 {
			return nil, fmt.Errorf("%w: circle radius must be positive, got %v", ErrInvalidDescriptor, d.Radius)
		}
		return &Collider{
			Kind:     ShapeCircle,
			Position: d.Position,
			radius:   d.Radius,
		}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, d.Kind)
}

// NewCircle builds a circle collider, panicking on a non-positive radius
func NewCircle(pos vmath.Vec3, radius vmath.Fixed) *Collider {
	c, err := NewCollider(Descriptor{Kind: ShapeCircle, Position: pos, Radius: radius})
	if err != nil {
		panic(err)
	}
	return c
}

// NewBox builds a box collider, panicking on degenerate axes or extents
func NewBox(pos, axisU, axisV vmath.Vec3, halfU, halfV vmath.Fixed) *Collider {
	c, err := NewCollider(Descriptor{
		Kind:     ShapeBox,
		Position: pos,
		AxisU:    axisU,
		AxisV:    axisV,
		HalfU:    halfU,
		HalfV:    halfV,
	})
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Collider) SetPosition(p vmath.Vec3) { c.Position = p }

// Radius is zero for boxes
func (c *Collider) Radius() vmath.Fixed { return c.radius }

// Axes returns the normalized box axes, zero vectors for circles
func (c *Collider) Axes() (u, v vmath.Vec3) { return c.axes[0], c.axes[1] }

// HalfExtents returns the box half extents, zero for circles
func (c *Collider) HalfExtents() (u, v vmath.Fixed) { return c.halfExtents[0], c.halfExtents[1] }

// Bounds returns a radius around Position that encloses the shape
// Box bounds come from a capped Sqrt, which only errs high
func (c *Collider) Bounds() vmath.Fixed {
	if c.Kind == ShapeCircle {
		return c.radius
	}
	hu, hv := c.halfExtents[0], c.halfExtents[1]
	return vmath.Sqrt(hu.Mul(hu) + hv.Mul(hv))
}

// Descriptor reconstructs the authoring data, with box axes in normalized form
func (c *Collider) Descriptor() Descriptor {
	return Descriptor{
		Kind:     c.Kind,
		Position: c.Position,
		AxisU:    c.axes[0],
		AxisV:    c.axes[1],
		HalfU:    c.halfExtents[0],
		HalfV:    c.halfExtents[1],
		Radius:   c.radius,
	}
}

func (c *Collider) String() string {
	switch c.Kind {
	case ShapeBox:
		return fmt.Sprintf("box%v half=%v x %v", c.Position, c.halfExtents[0], c.halfExtents[1])
	case ShapeCircle:
		return fmt.Sprintf("circle%v r=%v", c.Position, c.radius)
	}
	return c.Kind.String()
}
