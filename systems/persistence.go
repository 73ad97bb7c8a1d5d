package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PresetIndex int  `json:"presetIndex"`
	Debug       bool `json:"debug"`
	ShowPanel   bool `json:"showPanel"`
	Fullscreen  bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spark",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live toggles and preset selection.
func SaveCurrentSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	pg := GetOrCreatePlayground(e)
	_ = SaveSettings(&SavedSettings{
		PresetIndex: pg.PresetIndex,
		Debug:       settings.Debug,
		ShowPanel:   settings.ShowPanel,
		Fullscreen:  settings.Fullscreen,
	})
}

// ApplySavedSettings applies loaded settings to the scene state.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	settings := GetOrCreateSettings(e)
	settings.Debug = saved.Debug
	settings.ShowPanel = saved.ShowPanel
	settings.Fullscreen = saved.Fullscreen

	pg := GetOrCreatePlayground(e)
	pg.PresetIndex = saved.PresetIndex

	ebiten.SetFullscreen(saved.Fullscreen)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// SaveTelemetry stores a rendered CSV report under the app's data dir.
func SaveTelemetry(csv []byte) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if err := gdataManager.SaveItem("telemetry.csv", csv); err != nil {
		log.Printf("Warning: Could not save telemetry: %v", err)
		return err
	}
	return nil
}
