package components

import "github.com/yohamta/donburi"

// SettingsData holds toggles the player can flip at runtime.
type SettingsData struct {
	Debug      bool // Draw collision bodies
	ShowPanel  bool // Show the ebitenui control panel
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
