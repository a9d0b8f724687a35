// Package sim drives moving circles against a static environment at a fixed tick.
//
// It is the reference caller of the resolver: gameplay on the client and authority on the server
// run the same Step, so identical inputs yield identical sample streams.
package sim

import (
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/fixphys/physics"
	"github.com/lixenwraith/fixphys/vmath"
)

// Body holds a mover's collider; its Position is the authoritative position
type Body struct {
	Collider *physics.Collider
}

// Motion holds the per-mover movement state
type Motion struct {
	ID       int
	Intent   vmath.Vec3 // Desired velocity fed to the resolver every tick
	Velocity vmath.Vec3 // Last corrected velocity
	Wedged   bool
}

// Sample is one mover's state after a tick
type Sample struct {
	Tick       int
	Mover      int
	Position   vmath.Vec3
	Velocity   vmath.Vec3
	Correction vmath.Vec3
	Hits       []physics.Contact
	Wedged     bool
}

// World owns the movers; the static collider list is borrowed from the caller
type World struct {
	world    *ecs.World
	mapper   *ecs.Map2[Body, Motion]
	filter   *ecs.Filter2[Body, Motion]
	motions  *ecs.Map1[Motion]
	entities []ecs.Entity

	statics  []*physics.Collider
	resolver *physics.Resolver
	tick     int
}

func NewWorld(statics []*physics.Collider, resolver *physics.Resolver) *World {
	world := ecs.NewWorld()
	return &World{
		world:    world,
		mapper:   ecs.NewMap2[Body, Motion](world),
		filter:   ecs.NewFilter2[Body, Motion](world),
		motions:  ecs.NewMap1[Motion](world),
		statics:  statics,
		resolver: resolver,
	}
}

// Spawn adds a moving circle and returns its id; ids are assigned in spawn order
func (w *World) Spawn(pos vmath.Vec3, radius vmath.Fixed, intent vmath.Vec3) int {
	id := len(w.entities)
	body := Body{Collider: physics.NewCircle(pos, radius)}
	motion := Motion{ID: id, Intent: intent}
	w.entities = append(w.entities, w.mapper.NewEntity(&body, &motion))
	return id
}

// SetIntent changes a mover's desired velocity from the next tick on
func (w *World) SetIntent(id int, intent vmath.Vec3) {
	w.motions.Get(w.entities[id]).Intent = intent
}

// Mover returns a mover's collider for reading; callers must not keep it across ticks
func (w *World) Mover(id int) *physics.Collider {
	body, _ := w.mapper.Get(w.entities[id])
	return body.Collider
}

func (w *World) Len() int  { return len(w.entities) }
func (w *World) Tick() int { return w.tick }

// Step advances every mover by one tick and returns samples ordered by mover id
func (w *World) Step() []Sample {
	w.tick++
	dt := w.resolver.Tick
	samples := make([]Sample, 0, len(w.entities))

	query := w.filter.Query()
	for query.Next() {
		body, motion := query.Get()
		res := w.resolver.Resolve(body.Collider, motion.Intent, w.statics)

		next := vmath.V3Add(body.Collider.Position, vmath.V3Scale(res.Velocity, dt))
		next = vmath.V3Add(next, res.Correction)
		body.Collider.SetPosition(next)

		motion.Velocity = res.Velocity
		motion.Wedged = res.Wedged

		samples = append(samples, Sample{
			Tick:       w.tick,
			Mover:      motion.ID,
			Position:   next,
			Velocity:   res.Velocity,
			Correction: res.Correction,
			Hits:       res.Hits,
			Wedged:     res.Wedged,
		})
	}

	slices.SortFunc(samples, func(a, b Sample) int { return a.Mover - b.Mover })
	return samples
}

// Run steps n ticks and returns every sample in tick order
func (w *World) Run(n int) []Sample {
	out := make([]Sample, 0, n*len(w.entities))
	for i := 0; i < n; i++ {
		out = append(out, w.Step()...)
	}
	return out
}
