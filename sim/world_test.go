package sim

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/fixphys/physics"
	"github.com/lixenwraith/fixphys/vmath"
)

var (
	axisX  = vmath.V3(vmath.One, 0, 0)
	axisZ  = vmath.V3(0, 0, vmath.One)
	tick30 = vmath.One.Div(vmath.FromInt(30))
)

// wall's -x face sits at x = 1
func wall() *physics.Collider {
	return physics.NewBox(vmath.V3(vmath.FromInt(2), 0, 0), axisX, axisZ, vmath.One, vmath.FromInt(5))
}

func newWorld(statics ...*physics.Collider) *World {
	return NewWorld(statics, physics.NewResolver(tick30))
}

func TestSpawnAssignsSequentialIDs(t *testing.T) {
	w := newWorld()
	for i := 0; i < 3; i++ {
		if id := w.Spawn(vmath.V3Zero, vmath.One, vmath.V3Zero); id != i {
			t.Errorf("Expected id %d, got %d", i, id)
		}
	}
	if w.Len() != 3 {
		t.Errorf("Expected 3 movers, got %d", w.Len())
	}
}

func TestStepFreeMotion(t *testing.T) {
	w := newWorld()
	id := w.Spawn(vmath.V3Zero, vmath.One, vmath.V3(vmath.FromInt(3), 0, 0))

	samples := w.Step()
	if len(samples) != 1 {
		t.Fatalf("Expected one sample, got %d", len(samples))
	}
	s := samples[0]
	if s.Tick != 1 || s.Mover != id {
		t.Errorf("Expected tick 1 mover %d, got %+v", id, s)
	}
	// 3 * 34 raw = 102
	if want := vmath.V3(102, 0, 0); s.Position != want || w.Mover(id).Position != want {
		t.Errorf("Expected position %v, got %v", want, s.Position)
	}
	if len(s.Hits) != 0 || s.Wedged {
		t.Errorf("Expected free motion, got %+v", s)
	}
}

func TestWallStopsMover(t *testing.T) {
	w := newWorld(wall())
	id := w.Spawn(vmath.V3(vmath.FromInt(-3), 0, 0), vmath.FromFloat(0.5), vmath.V3(vmath.FromInt(2), 0, 0))

	limit := vmath.One - vmath.FromFloat(0.5)
	for _, s := range w.Run(120) {
		if s.Position.X > limit {
			t.Fatalf("Tick %d: mover passed the wall face, x = %v", s.Tick, s.Position.X)
		}
	}
	if w.Mover(id).Position.X < vmath.FromFloat(0.4) {
		t.Errorf("Expected mover to rest against the wall, x = %v", w.Mover(id).Position.X)
	}
	if w.Tick() != 120 {
		t.Errorf("Expected tick 120, got %d", w.Tick())
	}
}

func TestWallSlide(t *testing.T) {
	w := newWorld(wall())
	id := w.Spawn(vmath.V3(vmath.FromInt(-3), 0, 0), vmath.FromFloat(0.5), vmath.V3(vmath.FromInt(2), 0, vmath.One))
	w.Run(120)

	p := w.Mover(id).Position
	if p.X > vmath.FromFloat(0.5) {
		t.Errorf("Expected mover held at the wall, x = %v", p.X)
	}
	if p.Z < vmath.FromFloat(3.5) {
		t.Errorf("Expected mover to keep sliding along z, z = %v", p.Z)
	}
}

func TestSetIntent(t *testing.T) {
	w := newWorld()
	id := w.Spawn(vmath.V3Zero, vmath.One, vmath.V3Zero)
	w.Step()
	if !w.Mover(id).Position.IsZero() {
		t.Fatal("Expected idle mover to stay put")
	}
	w.SetIntent(id, vmath.V3(0, 0, vmath.FromInt(-3)))
	if s := w.Step()[0]; s.Position != vmath.V3(0, 0, -102) {
		t.Errorf("Expected (0, 0, -102), got %v", s.Position)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	build := func() *World {
		w := newWorld(
			wall(),
			physics.NewCircle(vmath.V3(0, 0, vmath.FromInt(2)), vmath.FromFloat(0.75)),
			physics.NewBox(vmath.V3(0, 0, vmath.FromInt(-3)), axisX, axisZ, vmath.FromInt(6), vmath.FromFloat(0.5)),
		)
		w.Spawn(vmath.V3(vmath.FromInt(-4), 0, 0), vmath.FromFloat(0.5), vmath.V3(vmath.FromInt(3), 0, vmath.FromFloat(1.5)))
		w.Spawn(vmath.V3(vmath.FromInt(-2), 0, vmath.One), vmath.FromFloat(0.4), vmath.V3(vmath.FromInt(1), 0, vmath.FromInt(-4)))
		w.Spawn(vmath.V3(0, 0, -vmath.One), vmath.FromFloat(0.6), vmath.V3(vmath.FromInt(-2), 0, vmath.FromInt(-2)))
		return w
	}

	a := build().Run(200)
	b := build().Run(200)
	if len(a) != 600 {
		t.Fatalf("Expected 600 samples, got %d", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical sample streams")
	}
	for i := 1; i < len(a); i++ {
		if a[i].Tick == a[i-1].Tick && a[i].Mover <= a[i-1].Mover {
			t.Fatalf("Samples out of mover order at %d", i)
		}
	}
}
