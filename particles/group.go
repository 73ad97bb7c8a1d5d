package particles

// Group is the pooling collaborator behind an Emitter: a collection that
// recycles dead members before growing. With MaxSize > 0 the pool is
// bounded and rotates the oldest member back into service once full; with
// MaxSize 0 it grows on demand.
type Group[P Emittable] struct {
	MaxSize int
	Visible bool
	Active  bool

	members []P
	marker  int
}

// NewGroup creates an empty group. maxSize of 0 means unbounded.
func NewGroup[P Emittable](maxSize int) *Group[P] {
	return &Group[P]{
		MaxSize: maxSize,
		Visible: true,
		Active:  true,
	}
}

// Add appends a member to the pool.
func (g *Group[P]) Add(p P) {
	g.members = append(g.members, p)
}

// Recycle returns a usable particle: the first dead member if one exists,
// a freshly constructed one while the pool may still grow, or (bounded
// pools only) the oldest member rotated back into service. It reports
// false when the pool cannot supply a particle, which aborts that
// emission attempt.
func (g *Group[P]) Recycle(factory func() P) (P, bool) {
	if g.MaxSize > 0 && len(g.members) >= g.MaxSize {
		p := g.members[g.marker]
		g.marker = (g.marker + 1) % g.MaxSize
		p.Base().Revive()
		return p, true
	}

	for _, p := range g.members {
		if !p.Base().Exists {
			p.Base().Revive()
			return p, true
		}
	}

	if factory == nil {
		var zero P
		return zero, false
	}
	p := factory()
	p.Base().Revive()
	g.members = append(g.members, p)
	return p, true
}

// Update advances every living member by dt seconds. This is the per-step
// pool update the emitter delegates to at the end of its own step.
func (g *Group[P]) Update(dt float64) {
	if !g.Active {
		return
	}
	for _, p := range g.members {
		if p.Base().Exists {
			p.Update(dt)
		}
	}
}

// Each visits every member, dead or alive.
func (g *Group[P]) Each(fn func(P)) {
	for _, p := range g.members {
		fn(p)
	}
}

// Length returns the number of managed particles, dead or alive.
func (g *Group[P]) Length() int {
	return len(g.members)
}

// CountLiving returns the number of members currently in play.
func (g *Group[P]) CountLiving() int {
	n := 0
	for _, p := range g.members {
		if p.Base().Exists {
			n++
		}
	}
	return n
}

// CountDead returns the number of members available for recycling.
func (g *Group[P]) CountDead() int {
	return len(g.members) - g.CountLiving()
}

// KillAll removes every member from play without releasing memory.
func (g *Group[P]) KillAll() {
	for _, p := range g.members {
		p.Base().Kill()
	}
}

// SetVisible toggles rendering for the whole pool.
func (g *Group[P]) SetVisible(visible bool) {
	g.Visible = visible
}

// SetActive toggles per-step updates for the whole pool.
func (g *Group[P]) SetActive(active bool) {
	g.Active = active
}
