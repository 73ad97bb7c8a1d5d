package systems

import (
	"github.com/ferricfire/spark/assets"
	"github.com/ferricfire/spark/components"
	cfg "github.com/ferricfire/spark/config"
	"github.com/ferricfire/spark/particles"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawLevel clears the screen and draws the arena walls.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	for _, wall := range level.CurrentLevel.Walls {
		vector.DrawFilledRect(screen,
			float32(wall.X), float32(wall.Y),
			float32(wall.Width), float32(wall.Height),
			cfg.WallGrey, false)
	}
}

// DrawParticles renders every living particle with its current scale,
// rotation, tint, alpha, and blend mode.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	dot := assets.ParticleDot()
	half := float64(assets.DotSize) / 2

	components.Emitter.Each(e.World, func(entry *donburi.Entry) {
		data := components.Emitter.Get(entry)
		if !data.Emitter.Visible {
			return
		}

		data.Group.Each(func(p *particles.Particle) {
			if !p.Exists || !p.Visible {
				return
			}

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()

			drawOp.GeoM.Translate(-half, -half)
			sx := p.Width * p.Scale.X / float64(assets.DotSize)
			sy := p.Height * p.Scale.Y / float64(assets.DotSize)
			drawOp.GeoM.Scale(sx, sy)
			drawOp.GeoM.Rotate(p.Angle)
			drawOp.GeoM.Translate(p.X, p.Y)

			drawOp.ColorScale.ScaleWithColor(p.Color)
			drawOp.ColorScale.ScaleAlpha(float32(p.Alpha))
			drawOp.Blend = p.Blend

			screen.DrawImage(dot, drawOp)
		})
	})

	// Blend is sticky on the shared op, reset for the next frame.
	drawOp.Blend = ebiten.Blend{}
}

// DrawEmitterMarkers draws a small crosshair at each emitter region.
func DrawEmitterMarkers(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	components.Emitter.Each(e.World, func(entry *donburi.Entry) {
		data := components.Emitter.Get(entry)
		em := data.Emitter
		cx := float32(em.X + em.Width/2)
		cy := float32(em.Y + em.Height/2)
		vector.StrokeLine(screen, cx-4, cy, cx+4, cy, 1, cfg.Magenta, false)
		vector.StrokeLine(screen, cx, cy-4, cx, cy+4, 1, cfg.Magenta, false)
	})
}
