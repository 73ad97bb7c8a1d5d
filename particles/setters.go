package particles

import "github.com/hajimehoshi/ebiten/v2"

// Chainable configuration setters. Each one writes the corresponding range
// directly; the exported fields can also be set by hand.

// SetSize resizes the spawn region.
func (e *Emitter[P]) SetSize(width, height float64) *Emitter[P] {
	e.Width = width
	e.Height = height
	return e
}

// SetPosition moves the top-left corner of the spawn region.
func (e *Emitter[P]) SetPosition(x, y float64) *Emitter[P] {
	e.X = x
	e.Y = y
	return e
}

// SetLaunchMode selects square or circle velocity sampling.
func (e *Emitter[P]) SetLaunchMode(mode LaunchMode) *Emitter[P] {
	e.Launch = mode
	return e
}

// SetVelocity sets the birth and end-of-life velocity sampling ranges.
func (e *Emitter[P]) SetVelocity(start, end VectorBounds) *Emitter[P] {
	e.Velocity = VectorRangeBounds{Start: start, End: end}
	return e
}

// SetLaunchAngle bounds the circle-mode launch angle in radians.
func (e *Emitter[P]) SetLaunchAngle(min, max float64) *Emitter[P] {
	e.LaunchAngle = Bounds{Min: min, Max: max}
	return e
}

// SetAngularVelocity sets the spin-rate sampling ranges in radians/second.
func (e *Emitter[P]) SetAngularVelocity(start, end Bounds) *Emitter[P] {
	e.AngularVelocity = RangeBounds{Start: start, End: end}
	return e
}

// SetAngle sets the birth and end-of-life angle sampling ranges. The end
// range only matters with IgnoreAngularVelocity.
func (e *Emitter[P]) SetAngle(start, end Bounds) *Emitter[P] {
	e.Angle = RangeBounds{Start: start, End: end}
	return e
}

// SetLifespan bounds how long spawned particles live, in seconds.
func (e *Emitter[P]) SetLifespan(min, max float64) *Emitter[P] {
	e.Lifespan = Bounds{Min: min, Max: max}
	return e
}

// SetScale sets the birth and end-of-life scale sampling ranges.
func (e *Emitter[P]) SetScale(start, end VectorBounds) *Emitter[P] {
	e.Scale = VectorRangeBounds{Start: start, End: end}
	return e
}

// SetAlpha sets the birth and end-of-life alpha sampling ranges.
func (e *Emitter[P]) SetAlpha(start, end Bounds) *Emitter[P] {
	e.Alpha = RangeBounds{Start: start, End: end}
	return e
}

// SetColor sets the birth and end-of-life color sampling ranges.
func (e *Emitter[P]) SetColor(start, end ColorBounds) *Emitter[P] {
	e.Color = ColorRangeBounds{Start: start, End: end}
	return e
}

// SetDrag sets the birth and end-of-life drag sampling ranges.
func (e *Emitter[P]) SetDrag(start, end VectorBounds) *Emitter[P] {
	e.Drag = VectorRangeBounds{Start: start, End: end}
	return e
}

// SetAcceleration sets the birth and end-of-life acceleration ranges.
func (e *Emitter[P]) SetAcceleration(start, end VectorBounds) *Emitter[P] {
	e.Acceleration = VectorRangeBounds{Start: start, End: end}
	return e
}

// SetElasticity sets the birth and end-of-life bounce sampling ranges.
func (e *Emitter[P]) SetElasticity(start, end Bounds) *Emitter[P] {
	e.Elasticity = RangeBounds{Start: start, End: end}
	return e
}

// SetCollisionTags marks spawned particles solid against the given resolv
// tags; an empty list disables collision.
func (e *Emitter[P]) SetCollisionTags(tags ...string) *Emitter[P] {
	e.CollisionTags = tags
	return e
}

// SetBlend selects the compositing mode copied onto spawned particles.
func (e *Emitter[P]) SetBlend(blend ebiten.Blend) *Emitter[P] {
	e.Blend = blend
	return e
}
