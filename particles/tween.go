package particles

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/ferricfire/spark/shared/gamemath"
)

// FloatRange is one particle's resolved interpolation span for a scalar
// attribute. Active is decided by exact equality of the sampled endpoints:
// two independently sampled floats almost never collide, so inactivity in
// practice means the configured range collapsed to a single value. This is
// deliberate degenerate-range detection; do not soften it to an epsilon
// comparison.
type FloatRange struct {
	Start, End float64
	Active     bool

	tween *gween.Tween
}

// Init resamples the span for a fresh spawn. duration is the owning
// particle's lifespan in seconds.
func (r *FloatRange) Init(start, end, duration float64) {
	r.Start = start
	r.End = end
	r.Active = start != end
	r.tween = nil
	if r.Active {
		r.tween = gween.New(float32(start), float32(end), float32(duration), ease.Linear)
	}
}

// Deactivate pins the attribute to its start value.
func (r *FloatRange) Deactivate() {
	r.Active = false
	r.tween = nil
}

// Advance steps the interpolation by dt seconds and returns the current
// value. Inactive spans clamp to Start.
func (r *FloatRange) Advance(dt float64) float64 {
	if !r.Active {
		return r.Start
	}
	v, _ := r.tween.Update(float32(dt))
	return float64(v)
}

// VectorRange is the vector counterpart of FloatRange. Activation compares
// the sampled start and end vectors component-wise with exact equality.
type VectorRange struct {
	Start, End gamemath.Vector
	Active     bool

	tweenX, tweenY *gween.Tween
}

// Init resamples the span for a fresh spawn.
func (r *VectorRange) Init(start, end gamemath.Vector, duration float64) {
	r.Start = start
	r.End = end
	r.Active = start != end
	r.tweenX, r.tweenY = nil, nil
	if r.Active {
		r.tweenX = gween.New(float32(start.X), float32(end.X), float32(duration), ease.Linear)
		r.tweenY = gween.New(float32(start.Y), float32(end.Y), float32(duration), ease.Linear)
	}
}

// Deactivate pins the attribute to its start value.
func (r *VectorRange) Deactivate() {
	r.Active = false
	r.tweenX, r.tweenY = nil, nil
}

// Advance steps the interpolation by dt seconds and returns the current
// vector.
func (r *VectorRange) Advance(dt float64) gamemath.Vector {
	if !r.Active {
		return r.Start
	}
	x, _ := r.tweenX.Update(float32(dt))
	y, _ := r.tweenY.Update(float32(dt))
	return gamemath.Vector{X: float64(x), Y: float64(y)}
}

// ColorRange interpolates between two resolved colors with a single blend
// tween, keeping all four channels on the Start-End line.
type ColorRange struct {
	Start, End color.RGBA
	Active     bool

	blend *gween.Tween
}

// Init resamples the span for a fresh spawn.
func (r *ColorRange) Init(start, end color.RGBA, duration float64) {
	r.Start = start
	r.End = end
	r.Active = start != end
	r.blend = nil
	if r.Active {
		r.blend = gween.New(0, 1, float32(duration), ease.Linear)
	}
}

// Advance steps the blend by dt seconds and returns the current color.
func (r *ColorRange) Advance(dt float64) color.RGBA {
	if !r.Active {
		return r.Start
	}
	t, _ := r.blend.Update(float32(dt))
	return LerpColor(r.Start, r.End, float64(t))
}
