package systems

import (
	"github.com/ferricfire/spark/components"
	cfg "github.com/ferricfire/spark/config"
	"github.com/ferricfire/spark/particles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEmitters advances every emitter by the fixed timestep and keeps
// collision bodies glued to their particles.
func UpdateEmitters(e *ecs.ECS) {
	dt := cfg.Playground.Dt

	components.Emitter.Each(e.World, func(entry *donburi.Entry) {
		data := components.Emitter.Get(entry)
		data.Emitter.Update(dt)

		spawned := 0
		data.Group.Each(func(p *particles.Particle) {
			if !p.Exists {
				return
			}
			// Fresh spawns have aged exactly one step.
			if p.Age > 0 && p.Age <= dt {
				spawned++
			}
			if p.Body != nil {
				p.UpdateHitbox()
			}
		})
		data.Emitted += spawned
	})
}
