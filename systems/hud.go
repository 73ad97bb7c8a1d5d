package systems

import (
	"fmt"

	"github.com/ferricfire/spark/components"
	cfg "github.com/ferricfire/spark/config"
	"github.com/ferricfire/spark/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the preset name and pool stats in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	pg := GetOrCreatePlayground(e)
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)
	line := int(cfg.HUD.LineHeight)

	entry, ok := components.Emitter.First(e.World)
	if !ok {
		text.Draw(screen, "no emitter", face, x, y, cfg.HUD.DimColor)
		return
	}
	data := components.Emitter.Get(entry)

	title := fmt.Sprintf("%s (%d/%d)", data.PresetName, pg.PresetIndex+1, len(pg.Presets))
	text.Draw(screen, title, face, x, y, cfg.HUD.TextColor)

	stats := fmt.Sprintf("living %d  pool %d  emitted %d",
		data.Group.CountLiving(), data.Group.Length(), data.Emitted)
	text.Draw(screen, stats, small, x, y+line, cfg.HUD.DimColor)

	state := "idle"
	if data.Emitter.Emitting {
		state = "streaming"
	}
	if pg.Paused {
		state = "paused"
	}
	text.Draw(screen, state, small, x, y+2*line, cfg.HUD.DimColor)
}
