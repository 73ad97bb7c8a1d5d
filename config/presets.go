package config

import (
	"fmt"
	"image/color"
	"math"
)

// Span is a min/max pair authored in preset files.
type Span struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ColorSpan holds hex-authored color endpoints for one end of an
// interpolation, e.g. "#ff8800".
type ColorSpan struct {
	Min string `yaml:"min"`
	Max string `yaml:"max"`
}

// EmitterPreset is one named effect definition from assets/presets.
// Angles are authored in degrees and converted on load.
type EmitterPreset struct {
	Name      string  `yaml:"name"`
	PoolSize  int     `yaml:"poolSize"`
	Frequency float64 `yaml:"frequency"`
	Quantity  int     `yaml:"quantity"`
	Explode   bool    `yaml:"explode"`

	Launch        string    `yaml:"launch"` // "circle" or "square"
	Width         float64   `yaml:"width"`
	Height        float64   `yaml:"height"`
	LaunchAngle   Span      `yaml:"launchAngle"` // degrees
	SpeedStart    Span      `yaml:"speedStart"`
	SpeedEnd      Span      `yaml:"speedEnd"`
	Lifespan      Span      `yaml:"lifespan"`
	ScaleStart    Span      `yaml:"scaleStart"`
	ScaleEnd      Span      `yaml:"scaleEnd"`
	AlphaStart    Span      `yaml:"alphaStart"`
	AlphaEnd      Span      `yaml:"alphaEnd"`
	ColorStart    ColorSpan `yaml:"colorStart"`
	ColorEnd      ColorSpan `yaml:"colorEnd"`
	Spin          Span      `yaml:"spin"`       // degrees per second
	AngleStart    Span      `yaml:"angleStart"` // degrees
	AngleEnd      Span      `yaml:"angleEnd"`   // degrees
	SpinFromAngle bool      `yaml:"spinFromAngle"`
	Gravity       float64   `yaml:"gravity"`
	Drag          float64   `yaml:"drag"`

	Collide    bool `yaml:"collide"`
	Elasticity Span `yaml:"elasticity"`
	Additive   bool `yaml:"additive"`
}

// Radians converts a degree-authored span to radians.
func (s Span) Radians() (float64, float64) {
	return s.Min * math.Pi / 180, s.Max * math.Pi / 180
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into an RGBA color.
// Empty strings fall back to opaque white.
func ParseHexColor(s string) (color.RGBA, error) {
	if s == "" {
		return White, nil
	}
	if s[0] == '#' {
		s = s[1:]
	}
	var c color.RGBA
	c.A = 255
	switch len(s) {
	case 6:
		_, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
		if err != nil {
			return White, fmt.Errorf("parse hex color %q: %w", s, err)
		}
	case 8:
		_, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
		if err != nil {
			return White, fmt.Errorf("parse hex color %q: %w", s, err)
		}
	default:
		return White, fmt.Errorf("parse hex color %q: want 6 or 8 hex digits", s)
	}
	return c, nil
}
