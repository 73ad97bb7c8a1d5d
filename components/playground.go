package components

import (
	"github.com/ferricfire/spark/config"
	"github.com/yohamta/donburi"
)

// PlaygroundData is the scene-wide state singleton.
type PlaygroundData struct {
	Paused      bool
	Tick        int
	PresetIndex int

	// Loaded preset library, in authored order.
	Presets []config.EmitterPreset

	// Frame stats sampled for the CSV telemetry dump.
	Samples []TelemetrySample
}

// TelemetrySample is one recorded frame-stats row.
type TelemetrySample struct {
	Tick    int `csv:"tick"`
	Living  int `csv:"living"`
	Pooled  int `csv:"pooled"`
	Spawned int `csv:"spawned"`
}

var Playground = donburi.NewComponentType[PlaygroundData]()
