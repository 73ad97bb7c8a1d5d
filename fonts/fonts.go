package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontName keys the loaded face registry.
type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
)

var faces = map[FontName]font.Face{}

// Get returns the loaded face, panicking when it was never loaded.
func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}

// Load parses ttf once and registers the HUD faces at their fixed sizes.
func Load(ttf []byte) {
	data, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse font: %v", err))
	}
	faces[HUD] = truetype.NewFace(data, &truetype.Options{Size: 10})
	faces[HUDSmall] = truetype.NewFace(data, &truetype.Options{Size: 8})
}
