package systems

import (
	"github.com/ferricfire/spark/components"
	"github.com/ferricfire/spark/particles"
	"github.com/ferricfire/spark/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput handles the playground key and mouse bindings:
//
//	Space       toggle streaming on the emitter
//	E           explode burst
//	Tab         cycle to the next preset
//	Left click  move the emitter to the cursor
//	D / P / H   debug bodies, pause, panel
//	T           dump telemetry CSV
//	F           fullscreen
func UpdateInput(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	pg := GetOrCreatePlayground(e)

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		settings.Debug = !settings.Debug
		SaveCurrentSettings(e)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		pg.Paused = !pg.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		settings.ShowPanel = !settings.ShowPanel
		SaveCurrentSettings(e)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		SaveCurrentSettings(e)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		DumpTelemetry(e)
	}

	entry, ok := components.Emitter.First(e.World)
	if !ok {
		return
	}
	data := components.Emitter.Get(entry)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ToggleStream(e, data)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		preset := pg.Presets[pg.PresetIndex]
		data.Emitter.Start(true, 0, preset.PoolSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		CyclePreset(e)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		data.Emitter.FocusOn(float64(mx), float64(my))
	}
}

// ToggleStream starts or stops continuous emission using the active
// preset's frequency and quantity.
func ToggleStream(e *ecs.ECS, data *components.EmitterData) {
	if data.Emitter.Emitting {
		data.Emitter.Stop()
		return
	}
	pg := GetOrCreatePlayground(e)
	preset := pg.Presets[pg.PresetIndex]
	data.Emitter.Start(false, preset.Frequency, preset.Quantity)
}

// CyclePreset replaces the emitter with the next preset in the library,
// keeping its position.
func CyclePreset(e *ecs.ECS) {
	pg := GetOrCreatePlayground(e)
	if len(pg.Presets) == 0 {
		return
	}

	entry, ok := components.Emitter.First(e.World)
	if !ok {
		return
	}
	data := components.Emitter.Get(entry)
	x, y := data.Emitter.X, data.Emitter.Y
	removeEmitter(e, entry, data)

	pg.PresetIndex = (pg.PresetIndex + 1) % len(pg.Presets)
	preset := pg.Presets[pg.PresetIndex]
	next := factory.CreateEmitter(e, x, y, pg.PresetIndex, preset)

	nextData := components.Emitter.Get(next)
	if !preset.Explode {
		nextData.Emitter.Start(false, preset.Frequency, preset.Quantity)
	}
	SaveCurrentSettings(e)
}

// removeEmitter tears down an emitter entity and pulls its particle
// bodies out of the collision space.
func removeEmitter(e *ecs.ECS, entry *donburi.Entry, data *components.EmitterData) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		data.Group.Each(func(p *particles.Particle) {
			if p.Body != nil {
				space.Remove(p.Body)
			}
		})
	}
	e.World.Remove(entry.Entity())
}
