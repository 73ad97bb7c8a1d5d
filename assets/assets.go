package assets

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/ferricfire/spark/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:presets
	presetFS embed.FS
)

// WallRect is one solid collision rectangle from the Walls layer.
type WallRect struct {
	X, Y, Width, Height float64
}

// EmitterSpawn is a point object naming the preset to place there.
type EmitterSpawn struct {
	X, Y   float64
	Preset string
}

type Level struct {
	Walls         []WallRect
	EmitterSpawns []EmitterSpawn
	Name          string
	Width         int
	Height        int
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levelPath := filepath.Join("levels", entry.Name())
			levels = append(levels, l.MustLoadLevel(levelPath))
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	level := Level{
		Walls:         []WallRect{},
		EmitterSpawns: []EmitterSpawn{},
		Name:          levelPath,
		Width:         levelMap.Width * levelMap.TileWidth,
		Height:        levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, WallRect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "EmitterSpawn":
			for _, o := range og.Objects {
				preset := o.Properties.GetString("preset")
				level.EmitterSpawns = append(level.EmitterSpawns, EmitterSpawn{
					X:      o.X,
					Y:      o.Y,
					Preset: preset,
				})
			}
		}
	}

	return level
}

type presetFile struct {
	Presets []config.EmitterPreset `yaml:"presets"`
}

// MustLoadPresets parses the embedded preset library.
func MustLoadPresets() []config.EmitterPreset {
	data, err := presetFS.ReadFile("presets/presets.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to read preset file: %v", err))
	}

	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		panic(fmt.Sprintf("Failed to parse preset file: %v", err))
	}
	if len(pf.Presets) == 0 {
		panic("No presets defined in presets/presets.yaml")
	}

	return pf.Presets
}

// DotSize is the unscaled particle sprite size in pixels.
const DotSize = 16

var particleDot *ebiten.Image

// ParticleDot returns the shared round particle sprite, built once.
func ParticleDot() *ebiten.Image {
	if particleDot == nil {
		particleDot = ebiten.NewImage(DotSize, DotSize)
		vector.DrawFilledCircle(particleDot, DotSize/2, DotSize/2, DotSize/2-1, config.White, true)
	}
	return particleDot
}
