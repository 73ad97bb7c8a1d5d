package particles

import (
	"image/color"
	"math"
	"testing"

	"github.com/ferricfire/spark/shared/gamemath"
)

func vec(x, y float64) gamemath.Vector {
	return gamemath.Vector{X: x, Y: y}
}

func degenerate(v float64) Bounds {
	return Bounds{Min: v, Max: v}
}

func TestDegenerateRangesPinStartValues(t *testing.T) {
	e := newTestEmitter()
	e.SetLaunchMode(LaunchModeSquare)
	e.SetVelocity(
		VectorBounds{Min: vec(10, 20), Max: vec(10, 20)},
		VectorBounds{Min: vec(30, 40), Max: vec(30, 40)},
	)
	e.SetScale(
		VectorBounds{Min: vec(2, 2), Max: vec(2, 2)},
		VectorBounds{Min: vec(0.5, 0.5), Max: vec(0.5, 0.5)},
	)
	e.SetAlpha(degenerate(1), degenerate(0))
	e.SetElasticity(degenerate(0.8), degenerate(0.8))
	e.SetAngularVelocity(degenerate(2), degenerate(2))
	e.SetDrag(
		VectorBounds{Min: vec(5, 5), Max: vec(5, 5)},
		VectorBounds{Min: vec(5, 5), Max: vec(5, 5)},
	)

	p, ok := e.EmitParticle()
	if !ok {
		t.Fatal("expected emission to succeed")
	}

	if p.Velocity != vec(10, 20) {
		t.Errorf("expected velocity pinned to start (10, 20), got %+v", p.Velocity)
	}
	if !p.VelocityRange.Active {
		t.Error("expected velocity interpolation active: start != end")
	}
	if p.Scale != vec(2, 2) {
		t.Errorf("expected scale 2, got %+v", p.Scale)
	}
	if !p.ScaleRange.Active {
		t.Error("expected scale interpolation active: start != end")
	}
	if p.Alpha != 1 {
		t.Errorf("expected alpha 1, got %v", p.Alpha)
	}
	if !p.AlphaRange.Active {
		t.Error("expected alpha interpolation active: start != end")
	}
	if p.Elasticity != 0.8 {
		t.Errorf("expected elasticity 0.8, got %v", p.Elasticity)
	}
	if p.ElasticityRange.Active {
		t.Error("expected elasticity interpolation inactive: start == end")
	}
	if p.AngularVelocity != 2 {
		t.Errorf("expected angular velocity 2, got %v", p.AngularVelocity)
	}
	if p.AngularVelocityRange.Active {
		t.Error("expected angular velocity interpolation inactive: start == end")
	}
	if p.DragRange.Active {
		t.Error("expected drag interpolation inactive: start == end")
	}
	if p.Drag != vec(5, 5) {
		t.Errorf("expected drag (5, 5), got %+v", p.Drag)
	}
}

func TestSpawnPositionInsideRegion(t *testing.T) {
	e := newTestEmitter()
	e.SetSize(32, 16)

	for i := 0; i < 200; i++ {
		p, ok := e.EmitParticle()
		if !ok {
			t.Fatal("expected emission to succeed")
		}
		if p.X < 100 || p.X >= 132 || p.Y < 200 || p.Y >= 216 {
			t.Fatalf("particle spawned at (%v, %v), outside [100,132)x[200,216)", p.X, p.Y)
		}
	}
}

func TestIgnoreAngularVelocityComputesConstantRate(t *testing.T) {
	e := newTestEmitter()
	e.IgnoreAngularVelocity = true
	e.SetLifespan(2, 2)
	e.SetAngle(degenerate(0.5), degenerate(1.5))

	p, ok := e.EmitParticle()
	if !ok {
		t.Fatal("expected emission to succeed")
	}

	want := (1.5 - 0.5) / 2.0
	if math.Abs(p.AngularVelocity-want) > 1e-12 {
		t.Errorf("expected angular velocity %v, got %v", want, p.AngularVelocity)
	}
	if p.AngularVelocityRange.Active {
		t.Error("expected angular velocity interpolation inactive in ignore mode")
	}
	if p.Angle != 0.5 {
		t.Errorf("expected start angle 0.5, got %v", p.Angle)
	}
}

func TestAngleSampledFromStartRangeOnly(t *testing.T) {
	e := newTestEmitter()
	e.SetAngle(degenerate(0.25), degenerate(7))

	p, _ := e.EmitParticle()
	if p.Angle != 0.25 {
		t.Errorf("expected angle from start range, got %v", p.Angle)
	}
}

func TestCollisionFlagsCopiedVerbatim(t *testing.T) {
	e := newTestEmitter()
	e.Immovable = true
	e.AutoUpdateHitbox = true
	e.SetCollisionTags("solid", "wall")

	p, _ := e.EmitParticle()
	if !p.Immovable {
		t.Error("expected immovable copied")
	}
	if !p.Solid {
		t.Error("expected solid derived from collision tags")
	}
	if len(p.CollisionTags) != 2 || p.CollisionTags[0] != "solid" {
		t.Errorf("expected collision tags copied, got %v", p.CollisionTags)
	}
	if !p.AutoUpdateHitbox {
		t.Error("expected autoUpdateHitbox copied")
	}

	e.SetCollisionTags()
	p, _ = e.EmitParticle()
	if p.Solid {
		t.Error("expected solid off with no collision tags")
	}
}

func TestColorSampledWithSingleBlendFactor(t *testing.T) {
	e := newTestEmitter()
	e.SetColor(
		ColorBounds{
			Min: color.RGBA{R: 0, G: 0, B: 0, A: 255},
			Max: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		ColorBounds{
			Min: color.RGBA{R: 255, G: 0, B: 0, A: 255},
			Max: color.RGBA{R: 255, G: 0, B: 0, A: 255},
		},
	)

	for i := 0; i < 50; i++ {
		p, _ := e.EmitParticle()
		// One blend factor across channels keeps grayscale samples gray.
		if p.Color.R != p.Color.G || p.Color.G != p.Color.B {
			t.Fatalf("expected uniform channel blend, got %+v", p.Color)
		}
	}
}

type hookedParticle struct {
	*Particle
	spawns int
}

func (h *hookedParticle) OnSpawn() {
	h.spawns++
}

func TestOnSpawnHookRunsAfterInitialization(t *testing.T) {
	group := NewGroup[*hookedParticle](0)
	e := NewEmitter(0, 0, group, func() *hookedParticle {
		return &hookedParticle{Particle: NewParticle(4)}
	})
	e.Reseed(7)

	p, ok := e.EmitParticle()
	if !ok {
		t.Fatal("expected emission to succeed")
	}
	if p.spawns != 1 {
		t.Errorf("expected 1 OnSpawn call, got %d", p.spawns)
	}

	// Recycled spawns fire the hook again.
	p.Kill()
	q, _ := e.EmitParticle()
	if q != p {
		t.Fatal("expected the dead particle to be recycled")
	}
	if p.spawns != 2 {
		t.Errorf("expected 2 OnSpawn calls after recycle, got %d", p.spawns)
	}
}

func TestParticleDiesAtEndOfLifespan(t *testing.T) {
	p := NewParticle(4)
	p.Reset(0, 0)
	p.Lifespan = 1

	p.Update(0.5)
	if !p.Exists {
		t.Fatal("expected particle alive at half lifespan")
	}
	p.Update(0.6)
	if p.Exists {
		t.Error("expected particle dead past lifespan")
	}
}

func TestImmortalParticleNeverExpires(t *testing.T) {
	p := NewParticle(4)
	p.Reset(0, 0)
	p.Lifespan = 0

	for i := 0; i < 1000; i++ {
		p.Update(1)
	}
	if !p.Exists {
		t.Error("expected lifespan 0 to mean immortal")
	}
}

func TestParticleInterpolatesAlphaOverLife(t *testing.T) {
	p := NewParticle(4)
	p.Reset(0, 0)
	p.Lifespan = 1
	p.AlphaRange.Init(1, 0, p.Lifespan)
	p.Alpha = p.AlphaRange.Start

	p.Update(0.5)
	if math.Abs(p.Alpha-0.5) > 1e-3 {
		t.Errorf("expected alpha near 0.5 at half life, got %v", p.Alpha)
	}
}

func TestParticleDragSlowsVelocity(t *testing.T) {
	p := NewParticle(4)
	p.Reset(0, 0)
	p.Lifespan = 10
	p.Velocity = vec(100, 0)
	p.Drag = vec(50, 0)

	p.Update(1)
	if math.Abs(p.Velocity.X-50) > 1e-9 {
		t.Errorf("expected velocity 50 after 1s of drag 50, got %v", p.Velocity.X)
	}

	// Drag never reverses direction.
	for i := 0; i < 10; i++ {
		p.Update(1)
	}
	if p.Velocity.X < 0 {
		t.Errorf("drag overshot zero: %v", p.Velocity.X)
	}
}

func TestParticleAccelerationIntegrates(t *testing.T) {
	p := NewParticle(4)
	p.Reset(0, 0)
	p.Lifespan = 10
	p.Acceleration = vec(0, 100)

	p.Update(1)
	if math.Abs(p.Velocity.Y-100) > 1e-9 {
		t.Errorf("expected velocity 100 after 1s at accel 100, got %v", p.Velocity.Y)
	}
	if math.Abs(p.Y-100) > 1e-9 {
		t.Errorf("expected position 100, got %v", p.Y)
	}
}
