package particles

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestBoundsSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	fixed := Bounds{Min: 3, Max: 3}
	for i := 0; i < 10; i++ {
		if got := fixed.Sample(rng); got != 3 {
			t.Fatalf("expected degenerate bounds to return 3, got %v", got)
		}
	}

	spread := Bounds{Min: -1, Max: 1}
	for i := 0; i < 200; i++ {
		got := spread.Sample(rng)
		if got < -1 || got >= 1 {
			t.Fatalf("sample %v outside [-1, 1)", got)
		}
	}
}

func TestVectorBoundsSamplesAxesIndependently(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := VectorBounds{Min: vec(0, 10), Max: vec(1, 10)}

	sawDistinctX := false
	var prev float64
	for i := 0; i < 50; i++ {
		got := b.Sample(rng)
		if got.Y != 10 {
			t.Fatalf("expected fixed y axis, got %v", got.Y)
		}
		if i > 0 && got.X != prev {
			sawDistinctX = true
		}
		prev = got.X
	}
	if !sawDistinctX {
		t.Error("expected the free x axis to vary across samples")
	}
}

func TestColorBoundsSampleStaysBetweenEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := ColorBounds{
		Min: color.RGBA{R: 100, G: 0, B: 200, A: 255},
		Max: color.RGBA{R: 200, G: 0, B: 200, A: 255},
	}

	for i := 0; i < 100; i++ {
		got := b.Sample(rng)
		if got.R < 100 || got.R > 200 {
			t.Fatalf("red channel %d outside [100, 200]", got.R)
		}
		if got.G != 0 || got.B != 200 || got.A != 255 {
			t.Fatalf("fixed channels drifted: %+v", got)
		}
	}
}

func TestLerpColorEndpointsAndMidpoint(t *testing.T) {
	from := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	to := color.RGBA{R: 200, G: 100, B: 0, A: 55}

	if got := LerpColor(from, to, 0); got != from {
		t.Errorf("expected from at t=0, got %+v", got)
	}
	if got := LerpColor(from, to, 1); got != to {
		t.Errorf("expected to at t=1, got %+v", got)
	}
	mid := LerpColor(from, to, 0.5)
	if mid.R != 100 || mid.G != 100 || mid.B != 100 {
		t.Errorf("expected midpoint (100, 100, 100), got %+v", mid)
	}
}

func TestFloatRangeAdvancesLinearly(t *testing.T) {
	var r FloatRange
	r.Init(10, 20, 2)
	if !r.Active {
		t.Fatal("expected distinct endpoints to activate the range")
	}

	got := r.Advance(1)
	if math.Abs(got-15) > 1e-3 {
		t.Errorf("expected 15 at half duration, got %v", got)
	}
	got = r.Advance(1)
	if math.Abs(got-20) > 1e-3 {
		t.Errorf("expected 20 at full duration, got %v", got)
	}
	// Past the end the value holds.
	got = r.Advance(1)
	if math.Abs(got-20) > 1e-3 {
		t.Errorf("expected clamp at 20 past the end, got %v", got)
	}
}

func TestFloatRangeInactiveWhenEndpointsEqual(t *testing.T) {
	var r FloatRange
	r.Init(5, 5, 2)
	if r.Active {
		t.Error("expected identical endpoints to leave the range inactive")
	}
	if got := r.Advance(1); got != 5 {
		t.Errorf("expected inactive range to hold its start, got %v", got)
	}
}

func TestVectorRangeActivationUsesExactEquality(t *testing.T) {
	var r VectorRange
	r.Init(vec(1, 1), vec(1, 1), 2)
	if r.Active {
		t.Error("expected equal vectors to leave the range inactive")
	}

	r.Init(vec(1, 1), vec(1, 1.0000001), 2)
	if !r.Active {
		t.Error("expected any component difference to activate the range")
	}
}

func TestColorRangeBlends(t *testing.T) {
	var r ColorRange
	r.Init(color.RGBA{R: 0, G: 0, B: 0, A: 255}, color.RGBA{R: 200, G: 200, B: 200, A: 255}, 2)
	if !r.Active {
		t.Fatal("expected distinct colors to activate the range")
	}

	got := r.Advance(1)
	if got.R != 100 || got.G != 100 || got.B != 100 {
		t.Errorf("expected midpoint gray, got %+v", got)
	}
}
