package particles

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ferricfire/spark/shared/gamemath"
)

// LaunchMode selects how a spawned particle's initial velocity is derived.
type LaunchMode int

const (
	// LaunchModeCircle draws one launch angle and converts independently
	// sampled start/end speeds to velocities along that angle. Start and
	// end share the direction so radial bursts can speed up or slow down
	// along the radius.
	LaunchModeCircle LaunchMode = iota
	// LaunchModeSquare samples every velocity component independently.
	LaunchModeSquare
)

// Emitter owns the spawn-scheduling state machine and the per-particle
// initializer. It borrows particles from a Group for the duration of a
// spawn; the Group keeps ownership and handles recycling.
//
// All range fields may be written directly or through the chainable
// setters. Ranges are sampled fresh for every spawned particle.
type Emitter[P Emittable] struct {
	// Spawn region. Particles appear uniformly inside the rectangle
	// [X, X+Width) x [Y, Y+Height).
	X, Y          float64
	Width, Height float64

	Launch                LaunchMode
	Velocity              VectorRangeBounds
	LaunchAngle           Bounds // radians, circle mode only
	AngularVelocity       RangeBounds
	Angle                 RangeBounds
	IgnoreAngularVelocity bool
	Lifespan              Bounds
	Scale                 VectorRangeBounds
	Alpha                 RangeBounds
	Color                 ColorRangeBounds
	Drag                  VectorRangeBounds
	Acceleration          VectorRangeBounds
	Elasticity            RangeBounds

	Immovable        bool
	AutoUpdateHitbox bool
	CollisionTags    []string
	Blend            ebiten.Blend

	// Emitting reports whether the emitter is actively spawning. Frequency
	// is the stream interval in seconds; <= 0 streams one particle per
	// step.
	Emitting  bool
	Frequency float64

	Exists  bool
	Visible bool

	group   *Group[P]
	factory func() P
	rng     *rand.Rand

	explode     bool
	quantity    int
	counter     int
	timer       float64
	waitForKill bool
}

// NewEmitter creates an emitter at (x, y) that borrows particles from
// group, constructing new ones with factory when the pool allows growth.
// Defaults mirror a white, three-second, full-circle burst.
func NewEmitter[P Emittable](x, y float64, group *Group[P], factory func() P) *Emitter[P] {
	return &Emitter[P]{
		X:      x,
		Y:      y,
		Launch: LaunchModeCircle,
		Velocity: VectorRangeBounds{
			Start: VectorBounds{Min: gamemath.Vector{X: -100, Y: -100}, Max: gamemath.Vector{X: 100, Y: 100}},
			End:   VectorBounds{Min: gamemath.Vector{X: -100, Y: -100}, Max: gamemath.Vector{X: 100, Y: 100}},
		},
		LaunchAngle: Bounds{Min: -math.Pi, Max: math.Pi},
		Lifespan:    Bounds{Min: 3, Max: 3},
		Scale: VectorRangeBounds{
			Start: VectorBounds{Min: gamemath.Vector{X: 1, Y: 1}, Max: gamemath.Vector{X: 1, Y: 1}},
			End:   VectorBounds{Min: gamemath.Vector{X: 1, Y: 1}, Max: gamemath.Vector{X: 1, Y: 1}},
		},
		Alpha: RangeBounds{Start: Bounds{Min: 1, Max: 1}, End: Bounds{Min: 1, Max: 1}},
		Color: ColorRangeBounds{
			Start: ColorBounds{Min: white, Max: white},
			End:   ColorBounds{Min: white, Max: white},
		},
		Frequency: 0.1,
		Exists:    true,
		Visible:   true,
		group:     group,
		factory:   factory,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Group exposes the pooling collaborator, mostly for rendering and stats.
func (e *Emitter[P]) Group() *Group[P] {
	return e.group
}

// Reseed makes the emitter's sampling deterministic.
func (e *Emitter[P]) Reseed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// MakeParticles pre-fills the pool with count dead particles so
// explode-mode bursts have a full complement to draw from.
func (e *Emitter[P]) MakeParticles(count int) *Emitter[P] {
	for i := 0; i < count; i++ {
		p := e.factory()
		p.Base().Kill()
		e.group.Add(p)
	}
	return e
}

// Start (re)activates the emitter. In explode mode the next Update spawns
// the whole burst at once; otherwise particles stream every frequency
// seconds. quantity is added to any still-pending amount, so stacked Start
// calls accumulate; 0 means unbounded (or, in explode mode, the whole
// pool).
func (e *Emitter[P]) Start(explode bool, frequency float64, quantity int) *Emitter[P] {
	e.Exists = true
	e.Visible = true
	e.group.SetVisible(true)
	e.Emitting = true

	e.explode = explode
	e.Frequency = frequency
	e.quantity += quantity

	e.counter = 0
	e.timer = 0
	e.waitForKill = false

	return e
}

// Update runs one scheduler step and then delegates to the pool's own
// per-step update. dt is the elapsed time in seconds.
func (e *Emitter[P]) Update(dt float64) {
	if e.Emitting {
		if e.explode {
			e.burst()
		} else if e.Frequency <= 0 {
			e.emitWithLimit()
		} else {
			e.timer += dt
			for e.Emitting && e.timer > e.Frequency {
				e.timer -= e.Frequency
				e.emitWithLimit()
			}
		}
	} else if e.waitForKill {
		e.timer += dt
		if e.Lifespan.Max > 0 && e.timer > e.Lifespan.Max {
			e.Kill()
			return
		}
	}

	e.group.Update(dt)
}

// burst emits the pending quantity synchronously, capped at the pool size
// (quantity 0 empties the whole pool), then parks the emitter until its
// particles have had time to expire.
func (e *Emitter[P]) burst() {
	e.Emitting = false
	e.waitForKill = true

	amount := e.quantity
	if amount <= 0 || amount > e.group.Length() {
		amount = e.group.Length()
	}
	for i := 0; i < amount; i++ {
		e.EmitParticle()
	}
	e.quantity = 0
}

// emitWithLimit emits one particle and retires the emitter once a bounded
// quantity has been served.
func (e *Emitter[P]) emitWithLimit() {
	if _, ok := e.EmitParticle(); !ok {
		return
	}
	e.counter++
	if e.quantity > 0 && e.counter >= e.quantity {
		e.Emitting = false
		e.waitForKill = true
		e.quantity = 0
	}
}

// Stop halts emission. Particles already in flight live out their
// lifespans under the pool's care.
func (e *Emitter[P]) Stop() {
	e.Emitting = false
	e.waitForKill = false
}

// Kill deactivates the whole emitter and hides its pool.
func (e *Emitter[P]) Kill() {
	e.Emitting = false
	e.waitForKill = false
	e.Exists = false
	e.Visible = false
	e.group.SetVisible(false)
}

// EmitParticle spawns a single particle immediately. It reports false when
// the pool cannot supply one, in which case the emission attempt is
// abandoned.
func (e *Emitter[P]) EmitParticle() (P, bool) {
	p, ok := e.group.Recycle(e.factory)
	if !ok {
		var zero P
		return zero, false
	}
	e.initParticle(p)
	return p, true
}

// initParticle stamps a recycled particle with freshly sampled values for
// every configured attribute. Every draw is independent per call and per
// axis, except circle-mode launch where start and end velocity share one
// launch angle.
func (e *Emitter[P]) initParticle(p P) {
	b := p.Base()

	life := e.Lifespan.Sample(e.rng)
	b.Lifespan = life

	b.Reset(
		e.X+e.rng.Float64()*e.Width,
		e.Y+e.rng.Float64()*e.Height,
	)

	if e.Launch == LaunchModeCircle {
		launchAngle := e.LaunchAngle.Sample(e.rng)
		startSpeed := e.Velocity.Start.Sample(e.rng).Length()
		endSpeed := e.Velocity.End.Sample(e.rng).Length()
		sx, sy := gamemath.VelocityFromAngle(launchAngle, startSpeed)
		ex, ey := gamemath.VelocityFromAngle(launchAngle, endSpeed)
		b.VelocityRange.Init(gamemath.Vector{X: sx, Y: sy}, gamemath.Vector{X: ex, Y: ey}, life)
	} else {
		b.VelocityRange.Init(e.Velocity.Start.Sample(e.rng), e.Velocity.End.Sample(e.rng), life)
	}
	b.Velocity = b.VelocityRange.Start

	// Either an interpolated spin of its own, or a constant rate that
	// sweeps the particle from its start angle to its end angle over
	// exactly one lifespan.
	if e.IgnoreAngularVelocity {
		a0 := e.Angle.Start.Sample(e.rng)
		a1 := e.Angle.End.Sample(e.rng)
		b.AngularVelocityRange.Deactivate()
		if life > 0 {
			b.AngularVelocity = (a1 - a0) / life
		} else {
			b.AngularVelocity = 0
		}
	} else {
		b.AngularVelocityRange.Init(
			e.AngularVelocity.Start.Sample(e.rng),
			e.AngularVelocity.End.Sample(e.rng),
			life,
		)
		b.AngularVelocity = b.AngularVelocityRange.Start
	}

	// The end-angle range is only consumed by the ignore path above.
	b.Angle = e.Angle.Start.Sample(e.rng)

	b.ScaleRange.Init(e.Scale.Start.Sample(e.rng), e.Scale.End.Sample(e.rng), life)
	b.Scale = b.ScaleRange.Start

	b.AlphaRange.Init(e.Alpha.Start.Sample(e.rng), e.Alpha.End.Sample(e.rng), life)
	b.Alpha = b.AlphaRange.Start

	b.ColorRange.Init(e.Color.Start.Sample(e.rng), e.Color.End.Sample(e.rng), life)
	b.Color = b.ColorRange.Start

	b.DragRange.Init(e.Drag.Start.Sample(e.rng), e.Drag.End.Sample(e.rng), life)
	b.Drag = b.DragRange.Start

	b.AccelerationRange.Init(e.Acceleration.Start.Sample(e.rng), e.Acceleration.End.Sample(e.rng), life)
	b.Acceleration = b.AccelerationRange.Start

	b.ElasticityRange.Init(e.Elasticity.Start.Sample(e.rng), e.Elasticity.End.Sample(e.rng), life)
	b.Elasticity = b.ElasticityRange.Start

	b.Immovable = e.Immovable
	b.Solid = len(e.CollisionTags) > 0
	b.CollisionTags = e.CollisionTags
	b.AutoUpdateHitbox = e.AutoUpdateHitbox
	b.Blend = e.Blend

	p.OnSpawn()
}

// FocusOn recenters the spawn region on the given midpoint.
func (e *Emitter[P]) FocusOn(midpointX, midpointY float64) {
	e.X = midpointX - e.Width/2
	e.Y = midpointY - e.Height/2
}
