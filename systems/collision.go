package systems

import (
	"github.com/ferricfire/spark/components"
	cfg "github.com/ferricfire/spark/config"
	"github.com/ferricfire/spark/particles"
	"github.com/ferricfire/spark/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticleCollisions bounces live colliding particles off solid
// geometry, scaled by each particle's elasticity.
func UpdateParticleCollisions(e *ecs.ECS) {
	dt := cfg.Playground.Dt

	components.Emitter.Each(e.World, func(entry *donburi.Entry) {
		data := components.Emitter.Get(entry)
		if !data.Collide {
			return
		}

		data.Group.Each(func(p *particles.Particle) {
			if !p.Exists || p.Body == nil || !p.Solid || p.Immovable {
				return
			}
			resolveParticleHorizontal(p, dt)
			resolveParticleVertical(p, dt)
		})
	})
}

func resolveParticleHorizontal(p *particles.Particle, dt float64) {
	dx := p.Velocity.X * dt
	if dx == 0 {
		return
	}

	col := p.Body.Check(dx, 0, tags.ResolvSolid)
	if col == nil {
		return
	}
	solids := col.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return
	}

	snapToContact(p, col, solids[0], dx, 0)
	p.Velocity.X = -p.Velocity.X * p.Elasticity
}

func resolveParticleVertical(p *particles.Particle, dt float64) {
	dy := p.Velocity.Y * dt
	if dy == 0 {
		return
	}

	col := p.Body.Check(0, dy, tags.ResolvSolid)
	if col == nil {
		return
	}
	solids := col.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return
	}

	snapToContact(p, col, solids[0], 0, dy)
	p.Velocity.Y = -p.Velocity.Y * p.Elasticity
}

// snapToContact moves the particle flush against the blocking object so
// the bounce starts from the surface rather than inside it.
func snapToContact(p *particles.Particle, col *resolv.Collision, obj *resolv.Object, dx, dy float64) {
	contact := col.ContactWithObject(obj)
	if dx != 0 {
		p.X += contact.X()
	}
	if dy != 0 {
		p.Y += contact.Y()
	}
	p.UpdateHitbox()
}
