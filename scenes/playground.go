package scenes

import (
	"sync"

	"github.com/ferricfire/spark/assets"
	"github.com/ferricfire/spark/components"
	cfg "github.com/ferricfire/spark/config"
	"github.com/ferricfire/spark/systems"
	factory2 "github.com/ferricfire/spark/systems/factory"
	"github.com/ferricfire/spark/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the game to another scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlaygroundScene runs the particle sandbox.
type PlaygroundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	panel        *ui.PanelUI
	once         sync.Once
}

func NewPlaygroundScene(sc SceneChanger) *PlaygroundScene {
	return &PlaygroundScene{sceneChanger: sc}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	settings := systems.GetOrCreateSettings(ps.ecs)
	if settings.ShowPanel {
		ps.panel.UI.Update()
		if entry, ok := components.Emitter.First(ps.ecs.World); ok {
			ps.panel.SetPresetName(components.Emitter.Get(entry).PresetName)
		}
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.Background)
		return
	}
	ps.ecs.Draw(screen)

	settings := systems.GetOrCreateSettings(ps.ecs)
	if settings.ShowPanel {
		ps.panel.UI.Draw(screen)
	}
}

func (ps *PlaygroundScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEmitters))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateParticleCollisions))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayground))

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawEmitterMarkers)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = e

	level := factory2.CreateLevel(e)
	levelData := components.Level.Get(level)

	factory2.CreateSpace(e,
		levelData.CurrentLevel.Width,
		levelData.CurrentLevel.Height,
		cfg.Playground.SpaceCellW,
		cfg.Playground.SpaceCellH,
	)

	for _, wall := range levelData.CurrentLevel.Walls {
		factory2.CreateWall(e, wall.X, wall.Y, wall.Width, wall.Height)
	}

	pg := systems.GetOrCreatePlayground(e)
	pg.Presets = assets.MustLoadPresets()

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(e, saved)
	}
	if pg.PresetIndex < 0 || pg.PresetIndex >= len(pg.Presets) {
		pg.PresetIndex = 0
	}
	preset := pg.Presets[pg.PresetIndex]

	// Place the emitter at the level spawn, or the arena center.
	x := float64(levelData.CurrentLevel.Width) / 2
	y := float64(levelData.CurrentLevel.Height) / 2
	if len(levelData.CurrentLevel.EmitterSpawns) > 0 {
		spawn := levelData.CurrentLevel.EmitterSpawns[0]
		x, y = spawn.X, spawn.Y
		if spawn.Preset != "" {
			for i, p := range pg.Presets {
				if p.Name == spawn.Preset {
					pg.PresetIndex = i
					preset = p
					break
				}
			}
		}
	}

	emitter := factory2.CreateEmitter(e, x, y, pg.PresetIndex, preset)
	if !preset.Explode {
		data := components.Emitter.Get(emitter)
		data.Emitter.Start(false, preset.Frequency, preset.Quantity)
	}

	ps.panel = ui.NewPanelUI()
	ps.panel.OnNextPreset = func() { systems.CyclePreset(e) }
	ps.panel.OnBurst = func() {
		if entry, ok := components.Emitter.First(e.World); ok {
			data := components.Emitter.Get(entry)
			active := pg.Presets[pg.PresetIndex]
			data.Emitter.Start(true, 0, active.PoolSize)
		}
	}
	ps.panel.OnStream = func() {
		if entry, ok := components.Emitter.First(e.World); ok {
			systems.ToggleStream(e, components.Emitter.Get(entry))
		}
	}
	ps.panel.OnPause = func() { pg.Paused = !pg.Paused }
	ps.panel.OnDebug = func() {
		settings := systems.GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
	}
}
