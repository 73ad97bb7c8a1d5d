package particles

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"

	"github.com/ferricfire/spark/shared/gamemath"
)

// Emittable is the capability an Emitter needs from its pooled particles.
// *Particle satisfies it directly; custom particle types embed *Particle
// and shadow OnSpawn to react to a fresh spawn (the override is resolved at
// compile time through the Emitter's type parameter).
type Emittable interface {
	Base() *Particle
	Update(dt float64)
	OnSpawn()
}

// Particle carries the full runtime state of one pooled particle. The
// emitter writes every field on spawn; the owning Group advances it each
// step. Memory belongs to the Group, never to the emitter.
type Particle struct {
	X, Y    float64
	Exists  bool
	Visible bool

	Velocity             gamemath.Vector
	VelocityRange        VectorRange
	AngularVelocity      float64 // radians per second
	AngularVelocityRange FloatRange
	Angle                float64

	Lifespan float64 // seconds; 0 means the particle never expires
	Age      float64

	Scale      gamemath.Vector
	ScaleRange VectorRange
	Alpha      float64
	AlphaRange FloatRange
	Color      color.RGBA
	ColorRange ColorRange

	Drag              gamemath.Vector
	DragRange         VectorRange
	Acceleration      gamemath.Vector
	AccelerationRange VectorRange
	Elasticity        float64
	ElasticityRange   FloatRange

	Immovable        bool
	Solid            bool
	CollisionTags    []string
	AutoUpdateHitbox bool
	Blend            ebiten.Blend

	// Unscaled render/hitbox size in pixels.
	Width, Height float64

	// Optional collision body, registered in the playground's resolv space.
	Body *resolv.Object
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// NewParticle returns a dead particle with neutral visual defaults.
func NewParticle(size float64) *Particle {
	return &Particle{
		Width:  size,
		Height: size,
		Scale:  gamemath.Vector{X: 1, Y: 1},
		Alpha:  1,
		Color:  white,
	}
}

// Base returns the particle itself, satisfying Emittable.
func (p *Particle) Base() *Particle { return p }

// Reset places the particle and restarts its lifetime accounting. Sampled
// motion state is zeroed; the emitter overwrites it right after.
func (p *Particle) Reset(x, y float64) {
	p.X, p.Y = x, y
	p.Age = 0
	p.Velocity = gamemath.Vector{}
	p.Acceleration = gamemath.Vector{}
	p.Drag = gamemath.Vector{}
	p.AngularVelocity = 0
	p.Revive()
}

// Kill removes the particle from play without releasing its memory.
func (p *Particle) Kill() {
	p.Exists = false
	p.Visible = false
}

// Revive returns a dead particle to play.
func (p *Particle) Revive() {
	p.Exists = true
	p.Visible = true
}

// OnSpawn runs after the emitter finishes writing spawn values. The stock
// behavior syncs the collision body with the freshly sampled scale.
func (p *Particle) OnSpawn() {
	if p.AutoUpdateHitbox {
		p.UpdateHitbox()
	}
}

// UpdateHitbox resizes the collision body to the current scaled size and
// recenters it on the particle position.
func (p *Particle) UpdateHitbox() {
	if p.Body == nil {
		return
	}
	w := p.Width * p.Scale.X
	h := p.Height * p.Scale.Y
	p.Body.W = w
	p.Body.H = h
	p.Body.X = p.X - w/2
	p.Body.Y = p.Y - h/2
	p.Body.SetShape(resolv.NewRectangle(0, 0, w, h))
	p.Body.Update()
}

// Update advances lifetime, interpolated attributes, and motion by dt
// seconds. Attribute spans only interpolate while the particle is mortal
// and alive; acceleration wins over drag per axis, and drag only bleeds
// speed when nothing is actively pushing that axis.
func (p *Particle) Update(dt float64) {
	if p.Lifespan > 0 {
		p.Age += dt
		if p.Age >= p.Lifespan {
			p.Kill()
			return
		}

		if p.VelocityRange.Active {
			p.Velocity = p.VelocityRange.Advance(dt)
		}
		if p.AngularVelocityRange.Active {
			p.AngularVelocity = p.AngularVelocityRange.Advance(dt)
		}
		if p.ScaleRange.Active {
			p.Scale = p.ScaleRange.Advance(dt)
		}
		if p.AlphaRange.Active {
			p.Alpha = p.AlphaRange.Advance(dt)
		}
		if p.ColorRange.Active {
			p.Color = p.ColorRange.Advance(dt)
		}
		if p.DragRange.Active {
			p.Drag = p.DragRange.Advance(dt)
		}
		if p.AccelerationRange.Active {
			p.Acceleration = p.AccelerationRange.Advance(dt)
		}
		if p.ElasticityRange.Active {
			p.Elasticity = p.ElasticityRange.Advance(dt)
		}
	}

	if p.Acceleration.X != 0 {
		p.Velocity.X += p.Acceleration.X * dt
	} else if p.Drag.X != 0 {
		p.Velocity.X = gamemath.ApplyDrag(p.Velocity.X, p.Drag.X*dt)
	}
	if p.Acceleration.Y != 0 {
		p.Velocity.Y += p.Acceleration.Y * dt
	} else if p.Drag.Y != 0 {
		p.Velocity.Y = gamemath.ApplyDrag(p.Velocity.Y, p.Drag.Y*dt)
	}

	p.X += p.Velocity.X * dt
	p.Y += p.Velocity.Y * dt
	p.Angle += p.AngularVelocity * dt
}
