// Package particles implements a pooled 2D particle emitter: a spawn
// scheduler that decides when each particle is born, and an initializer
// that samples every configured attribute range onto a recycled particle.
// Rendering and collision response live in the playground systems; this
// package only decides birth timing and birth values.
package particles

import (
	"image/color"
	"math/rand"

	"github.com/ferricfire/spark/shared/gamemath"
)

// Bounds is a non-interpolated sampling range. Min > Max is a caller
// contract violation: sampling from an inverted interval is unspecified
// and is not checked.
type Bounds struct {
	Min, Max float64
}

// Sample draws a uniform value in [Min, Max].
func (b Bounds) Sample(rng *rand.Rand) float64 {
	if b.Min == b.Max {
		return b.Min
	}
	return b.Min + rng.Float64()*(b.Max-b.Min)
}

// VectorBounds is a rectangular sampling range; each axis is drawn
// independently.
type VectorBounds struct {
	Min, Max gamemath.Vector
}

// Sample draws each component uniformly from its own interval.
func (b VectorBounds) Sample(rng *rand.Rand) gamemath.Vector {
	return gamemath.Vector{
		X: Bounds{Min: b.Min.X, Max: b.Max.X}.Sample(rng),
		Y: Bounds{Min: b.Min.Y, Max: b.Max.Y}.Sample(rng),
	}
}

// RangeBounds pairs the sampling range for a value at particle birth with
// the range for its value at end of life. The particle interpolates
// start to end over its lifespan.
type RangeBounds struct {
	Start, End Bounds
}

// VectorRangeBounds is RangeBounds for 2D vector attributes.
type VectorRangeBounds struct {
	Start, End VectorBounds
}

// ColorBounds samples a random color between Min and Max using one blend
// factor applied across all four channels, so results stay on the line
// between the two bound colors instead of drifting per channel.
type ColorBounds struct {
	Min, Max color.RGBA
}

// Sample draws a color on the Min-Max line.
func (b ColorBounds) Sample(rng *rand.Rand) color.RGBA {
	if b.Min == b.Max {
		return b.Min
	}
	return LerpColor(b.Min, b.Max, rng.Float64())
}

// ColorRangeBounds pairs birth and end-of-life color sampling ranges.
type ColorRangeBounds struct {
	Start, End ColorBounds
}

// LerpColor blends uniformly between two colors by t in [0, 1].
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(gamemath.Lerp(float64(from.R), float64(to.R), t)),
		G: uint8(gamemath.Lerp(float64(from.G), float64(to.G), t)),
		B: uint8(gamemath.Lerp(float64(from.B), float64(to.B), t)),
		A: uint8(gamemath.Lerp(float64(from.A), float64(to.A), t)),
	}
}
