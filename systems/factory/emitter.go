package factory

import (
	"log"

	"github.com/ferricfire/spark/archetypes"
	"github.com/ferricfire/spark/components"
	cfg "github.com/ferricfire/spark/config"
	"github.com/ferricfire/spark/particles"
	"github.com/ferricfire/spark/shared/gamemath"
	"github.com/ferricfire/spark/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEmitter places a preset-configured emitter at (x, y). Particles
// are pooled up front; colliding presets get a resolv body per particle,
// registered in the scene's space.
func CreateEmitter(e *ecs.ECS, x, y float64, presetIndex int, preset cfg.EmitterPreset) *donburi.Entry {
	entry := archetypes.Emitter.Spawn(e)

	pool := preset.PoolSize
	if pool <= 0 {
		pool = cfg.Playground.DefaultPool
	}

	size := cfg.Playground.ParticleSize
	makeParticle := func() *particles.Particle {
		p := particles.NewParticle(size)
		if preset.Collide {
			obj := resolv.NewObject(x, y, size, size, tags.ResolvParticle)
			obj.SetShape(resolv.NewRectangle(0, 0, size, size))
			p.Body = obj
			if spaceEntry, ok := components.Space.First(e.World); ok {
				components.Space.Get(spaceEntry).Add(obj)
			}
		}
		return p
	}

	group := particles.NewGroup[*particles.Particle](pool)
	em := particles.NewEmitter(x, y, group, makeParticle)
	applyPreset(em, preset)
	em.MakeParticles(pool)

	components.Emitter.SetValue(entry, components.EmitterData{
		Emitter:     em,
		Group:       group,
		PresetName:  preset.Name,
		PresetIndex: presetIndex,
		Collide:     preset.Collide,
	})

	return entry
}

func applyPreset(em *particles.Emitter[*particles.Particle], p cfg.EmitterPreset) {
	em.SetSize(p.Width, p.Height)

	if p.Launch == "square" {
		em.SetLaunchMode(particles.LaunchModeSquare)
	} else {
		em.SetLaunchMode(particles.LaunchModeCircle)
	}

	aMin, aMax := p.LaunchAngle.Radians()
	em.SetLaunchAngle(aMin, aMax)
	em.SetVelocity(speedBounds(p.Launch, p.SpeedStart), speedBounds(p.Launch, p.SpeedEnd))

	if p.Lifespan.Max > 0 {
		em.SetLifespan(p.Lifespan.Min, p.Lifespan.Max)
	}
	em.SetScale(axisBounds(p.ScaleStart), axisBounds(p.ScaleEnd))
	em.SetAlpha(span(p.AlphaStart), span(p.AlphaEnd))

	start, end, err := presetColors(p)
	if err != nil {
		log.Printf("Warning: preset %q: %v", p.Name, err)
	} else {
		em.SetColor(start, end)
	}

	sMin, sMax := p.Spin.Radians()
	em.SetAngularVelocity(particles.Bounds{Min: sMin, Max: sMax}, particles.Bounds{Min: sMin, Max: sMax})
	a0Min, a0Max := p.AngleStart.Radians()
	a1Min, a1Max := p.AngleEnd.Radians()
	em.SetAngle(particles.Bounds{Min: a0Min, Max: a0Max}, particles.Bounds{Min: a1Min, Max: a1Max})
	em.IgnoreAngularVelocity = p.SpinFromAngle

	if p.Gravity != 0 {
		g := uniformBounds(0, p.Gravity)
		em.SetAcceleration(g, g)
	}
	if p.Drag != 0 {
		d := uniformBounds(p.Drag, p.Drag)
		em.SetDrag(d, d)
	}

	if p.Collide {
		em.SetCollisionTags(tags.ResolvSolid)
		em.AutoUpdateHitbox = true
		em.SetElasticity(span(p.Elasticity), span(p.Elasticity))
	}

	if p.Additive {
		em.SetBlend(ebiten.BlendLighter)
	}
}

// speedBounds maps an authored speed span onto velocity bounds. Circle
// launches read the magnitude off the x axis; square launches spread the
// span over both axes.
func speedBounds(launch string, s cfg.Span) particles.VectorBounds {
	if launch == "square" {
		return particles.VectorBounds{
			Min: gamemath.Vector{X: s.Min, Y: s.Min},
			Max: gamemath.Vector{X: s.Max, Y: s.Max},
		}
	}
	return particles.VectorBounds{
		Min: gamemath.Vector{X: s.Min},
		Max: gamemath.Vector{X: s.Max},
	}
}

func axisBounds(s cfg.Span) particles.VectorBounds {
	return particles.VectorBounds{
		Min: gamemath.Vector{X: s.Min, Y: s.Min},
		Max: gamemath.Vector{X: s.Max, Y: s.Max},
	}
}

func uniformBounds(x, y float64) particles.VectorBounds {
	v := gamemath.Vector{X: x, Y: y}
	return particles.VectorBounds{Min: v, Max: v}
}

func span(s cfg.Span) particles.Bounds {
	return particles.Bounds{Min: s.Min, Max: s.Max}
}

func presetColors(p cfg.EmitterPreset) (particles.ColorBounds, particles.ColorBounds, error) {
	var start, end particles.ColorBounds
	var err error

	if start.Min, err = cfg.ParseHexColor(p.ColorStart.Min); err != nil {
		return start, end, err
	}
	if start.Max, err = cfg.ParseHexColor(p.ColorStart.Max); err != nil {
		return start, end, err
	}
	if end.Min, err = cfg.ParseHexColor(p.ColorEnd.Min); err != nil {
		return start, end, err
	}
	if end.Max, err = cfg.ParseHexColor(p.ColorEnd.Max); err != nil {
		return start, end, err
	}
	return start, end, nil
}
