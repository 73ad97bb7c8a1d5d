package systems

import (
	"github.com/ferricfire/spark/components"
	cfg "github.com/ferricfire/spark/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the scene's settings singleton, creating it
// with the configured defaults on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}

	entry := e.World.Entry(e.World.Create(components.Settings))
	components.Settings.SetValue(entry, components.SettingsData{
		Debug:     cfg.Debug.ShowBodies,
		ShowPanel: true,
	})
	return components.Settings.Get(entry)
}
