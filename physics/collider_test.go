package physics

import (
	"errors"
	"testing"

	"github.com/lixenwraith/fixphys/vmath"
)

var (
	axisX = vmath.V3(vmath.One, 0, 0)
	axisZ = vmath.V3(0, 0, vmath.One)
)

func fx(f float64) vmath.Fixed { return vmath.FromFloat(f) }

func pos(x, y, z float64) vmath.Vec3 { return vmath.V3(fx(x), fx(y), fx(z)) }

func mustPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic with %v, got none", want)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("Expected panic with %v, got %v", want, r)
		}
	}()
	fn()
}

func TestNewColliderValidation(t *testing.T) {
	tests := []struct {
		name    string
		d       Descriptor
		wantErr bool
	}{
		{"circle", Descriptor{Kind: ShapeCircle, Radius: vmath.One}, false},
		{"box", Descriptor{Kind: ShapeBox, AxisU: axisX, AxisV: axisZ, HalfU: vmath.One, HalfV: vmath.One}, false},
		{"zero kind", Descriptor{Radius: vmath.One}, true},
		{"circle zero radius", Descriptor{Kind: ShapeCircle}, true},
		{"box zero axis", Descriptor{Kind: ShapeBox, AxisU: axisX, HalfU: vmath.One, HalfV: vmath.One}, true},
		{"box negative extent", Descriptor{Kind: ShapeBox, AxisU: axisX, AxisV: axisZ, HalfU: -vmath.One, HalfV: vmath.One}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCollider(tt.d)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDescriptor) {
					t.Errorf("Expected ErrInvalidDescriptor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c.Kind != tt.d.Kind {
				t.Errorf("Expected kind %v, got %v", tt.d.Kind, c.Kind)
			}
		})
	}
}

func TestNewColliderNormalizesAxes(t *testing.T) {
	box := NewBox(vmath.V3Zero, vmath.V3(vmath.FromInt(3), 0, 0), vmath.V3(0, 0, vmath.FromInt(-2)), vmath.One, vmath.One)
	u, v := box.Axes()
	if u != axisX || v != vmath.V3Neg(axisZ) {
		t.Errorf("Expected unit axes, got %v %v", u, v)
	}
	if d := box.Descriptor(); d.Kind != ShapeBox || d.HalfU != vmath.One {
		t.Errorf("Descriptor round trip mismatch: %+v", d)
	}
}

func TestCircleVsBox(t *testing.T) {
	box := NewBox(vmath.V3Zero, axisX, axisZ, vmath.One, vmath.One)

	tests := []struct {
		name       string
		circle     vmath.Vec3
		wantHit    bool
		wantNormal vmath.Vec3
		wantAdjust vmath.Vec3
	}{
		{"outside on both axes", pos(5, 0, 5), false, vmath.Vec3{}, vmath.Vec3{}},
		{"touching is not contact", pos(2, 0, 0), false, vmath.Vec3{}, vmath.Vec3{}},
		{"overlap along x", pos(1.5, 0, 0.25), true, pos(1, 0, 0), pos(0.5, 0, 0)},
		{"overlap along -z", pos(-0.25, 0, -1.5), true, pos(0, 0, -1), pos(0, 0, -0.5)},
		{"center inside box", pos(0.25, 0, 0), true, vmath.Vec3{}, vmath.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCircle(tt.circle, vmath.One)
			ct, ok := c.DetectContact(box)
			if ok != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v", tt.wantHit, ok)
			}
			if !ok {
				return
			}
			if ct.Collider != box {
				t.Error("Expected contact to reference the box")
			}
			if ct.Normal != tt.wantNormal {
				t.Errorf("Expected normal %v, got %v", tt.wantNormal, ct.Normal)
			}
			if ct.BorderAdjust != tt.wantAdjust {
				t.Errorf("Expected adjust %v, got %v", tt.wantAdjust, ct.BorderAdjust)
			}
		})
	}
}

func TestCircleVsRotatedBox(t *testing.T) {
	u := vmath.V3(vmath.One, 0, vmath.One)
	v := vmath.V3(-vmath.One, 0, vmath.One)
	box := NewBox(vmath.V3Zero, u, v, vmath.One, vmath.One)

	// Corner of the axis-aligned footprint, outside the rotated box
	if _, ok := NewCircle(pos(1.5, 0, 1.5), vmath.One).DetectContact(box); ok {
		t.Error("Expected no contact beyond the rotated face")
	}

	ct, ok := NewCircle(pos(1.2, 0, 1.2), vmath.One).DetectContact(box)
	if !ok {
		t.Fatal("Expected contact with the rotated face")
	}
	if want := vmath.V3(724, 0, 724); ct.Normal != want {
		t.Errorf("Expected normal %v, got %v", want, ct.Normal)
	}
	if want := vmath.V3(219, 0, 219); ct.BorderAdjust != want {
		t.Errorf("Expected adjust %v, got %v", want, ct.BorderAdjust)
	}
}

func TestCircleVsCircle(t *testing.T) {
	a := NewCircle(vmath.V3Zero, vmath.One)
	b := NewCircle(pos(1.5, 0, 0), vmath.One)

	ct, ok := a.DetectContact(b)
	if !ok {
		t.Fatal("Expected contact")
	}
	if ct.Normal != pos(-1, 0, 0) {
		t.Errorf("Expected normal (-1, 0, 0), got %v", ct.Normal)
	}
	if ct.BorderAdjust != pos(-0.5, 0, 0) {
		t.Errorf("Expected adjust (-0.5, 0, 0), got %v", ct.BorderAdjust)
	}

	far := NewCircle(pos(2, 0, 0), vmath.One)
	if _, ok := a.DetectContact(far); ok {
		t.Error("Expected touching circles not to report contact")
	}
}

func TestBoxVsCircleMirrors(t *testing.T) {
	box := NewBox(vmath.V3Zero, axisX, axisZ, vmath.One, vmath.One)
	circle := NewCircle(pos(1.5, 0, 0.25), vmath.One)

	fromCircle, ok1 := circle.DetectContact(box)
	fromBox, ok2 := box.DetectContact(circle)
	if !ok1 || !ok2 {
		t.Fatal("Expected contact in both directions")
	}
	if fromBox.Normal != vmath.V3Neg(fromCircle.Normal) {
		t.Errorf("Expected mirrored normal, got %v and %v", fromCircle.Normal, fromBox.Normal)
	}
	if fromBox.BorderAdjust != vmath.V3Neg(fromCircle.BorderAdjust) {
		t.Errorf("Expected mirrored adjust, got %v and %v", fromCircle.BorderAdjust, fromBox.BorderAdjust)
	}
	if fromBox.Collider != circle {
		t.Error("Expected mirrored contact to reference the circle")
	}
}

func TestBoxVsBoxNeverReports(t *testing.T) {
	a := NewBox(vmath.V3Zero, axisX, axisZ, vmath.One, vmath.One)
	b := NewBox(vmath.V3Zero, axisX, axisZ, vmath.One, vmath.One)
	if _, ok := a.DetectContact(b); ok {
		t.Error("Expected no box-vs-box contact")
	}
}

func TestUnknownShapePanics(t *testing.T) {
	circle := NewCircle(vmath.V3Zero, vmath.One)
	bogus := &Collider{Kind: ShapeKind(9)}
	mustPanic(t, ErrUnknownShape, func() { circle.DetectContact(bogus) })
	mustPanic(t, ErrUnknownShape, func() { bogus.DetectCircle(circle) })
}

func TestBounds(t *testing.T) {
	if r := NewCircle(vmath.V3Zero, fx(0.75)).Bounds(); r != fx(0.75) {
		t.Errorf("Expected circle bounds 0.75, got %v", r)
	}
	box := NewBox(vmath.V3Zero, axisX, axisZ, vmath.FromInt(3), vmath.FromInt(4))
	if r := box.Bounds(); r != vmath.FromInt(5) {
		t.Errorf("Expected box bounds 5, got %v", r)
	}
}
