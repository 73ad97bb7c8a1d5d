package components

import (
	"github.com/ferricfire/spark/particles"
	"github.com/yohamta/donburi"
)

// EmitterData wraps one emitter and the pool it recycles from.
type EmitterData struct {
	Emitter *particles.Emitter[*particles.Particle]
	Group   *particles.Group[*particles.Particle]

	PresetName  string
	PresetIndex int
	Collide     bool

	// Running total of particles emitted, for the HUD and telemetry.
	Emitted int
}

var Emitter = donburi.NewComponentType[EmitterData]()
