package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// PlaygroundConfig contains simulation tuning for the particle playground
type PlaygroundConfig struct {
	// Simulation
	Dt          float64 // Fixed timestep in seconds
	DefaultPool int     // Pool size when a preset does not set one
	SpaceCellW  int     // Collision space cell width in pixels
	SpaceCellH  int     // Collision space cell height in pixels

	// Arena
	WallThickness float64 // Border wall thickness when the level defines none

	// Rendering
	ParticleSize float64 // Base particle sprite size in pixels
}

// TelemetryConfig controls the CSV frame-stats recorder
type TelemetryConfig struct {
	SampleEvery int // Ticks between samples
	MaxSamples  int // Cap so long sessions stay bounded
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
	DimColor   color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartPaused bool // Start the simulation paused
	ShowBodies  bool // Draw collision bodies from startup
}

// Config holds general application configuration
type Config struct {
	Width  int
	Height int
}

// Default is the ECS layer every entity spawns on.
var Default ecs.LayerID = 0

// Global configuration instances
var C *Config
var Playground PlaygroundConfig
var Telemetry TelemetryConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	WallGrey     = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	Background   = color.RGBA{R: 16, G: 18, B: 24, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Playground = PlaygroundConfig{
		Dt:            1.0 / 60.0,
		DefaultPool:   200,
		SpaceCellW:    16,
		SpaceCellH:    16,
		WallThickness: 8.0,
		ParticleSize:  8.0,
	}

	Telemetry = TelemetryConfig{
		SampleEvery: 30, // Half a second at 60fps
		MaxSamples:  1200,
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 14,
		TextColor:  White,
		DimColor:   color.RGBA{R: 170, G: 170, B: 180, A: 255},
	}

	Debug = DebugConfig{
		StartPaused: false,
		ShowBodies:  false,
	}
}
