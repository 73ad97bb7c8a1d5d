package systems

import (
	"github.com/ferricfire/spark/archetypes"
	"github.com/ferricfire/spark/components"
	cfg "github.com/ferricfire/spark/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreatePlayground returns the scene state singleton.
func GetOrCreatePlayground(e *ecs.ECS) *components.PlaygroundData {
	if entry, ok := components.Playground.First(e.World); ok {
		return components.Playground.Get(entry)
	}

	entry := archetypes.Playground.Spawn(e)
	components.Playground.SetValue(entry, components.PlaygroundData{
		Paused: cfg.Debug.StartPaused,
	})
	return components.Playground.Get(entry)
}

// WithPauseCheck wraps a system so it only runs while unpaused.
func WithPauseCheck(system func(e *ecs.ECS)) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		if GetOrCreatePlayground(e).Paused {
			return
		}
		system(e)
	}
}

// UpdatePlayground advances the tick counter and records frame stats at
// the configured sampling rate.
func UpdatePlayground(e *ecs.ECS) {
	pg := GetOrCreatePlayground(e)
	pg.Tick++

	if cfg.Telemetry.SampleEvery <= 0 || pg.Tick%cfg.Telemetry.SampleEvery != 0 {
		return
	}
	if len(pg.Samples) >= cfg.Telemetry.MaxSamples {
		return
	}

	sample := components.TelemetrySample{Tick: pg.Tick}
	components.Emitter.Each(e.World, func(entry *donburi.Entry) {
		data := components.Emitter.Get(entry)
		sample.Living += data.Group.CountLiving()
		sample.Pooled += data.Group.Length()
		sample.Spawned += data.Emitted
	})
	pg.Samples = append(pg.Samples, sample)
}
