package assets

import "testing"

func TestMustLoadPresets(t *testing.T) {
	presets := MustLoadPresets()

	if got := len(presets); got != 4 {
		t.Fatalf("expected 4 presets, got %d", got)
	}

	want := []string{"fountain", "burst", "smoke", "sparks"}
	for i, name := range want {
		if presets[i].Name != name {
			t.Errorf("preset %d: name = %q, want %q", i, presets[i].Name, name)
		}
	}

	fountain := presets[0]
	if fountain.PoolSize != 300 {
		t.Errorf("fountain pool size = %d, want 300", fountain.PoolSize)
	}
	if !fountain.Collide {
		t.Error("expected fountain to collide")
	}
	if fountain.Launch != "circle" {
		t.Errorf("fountain launch = %q, want %q", fountain.Launch, "circle")
	}

	if !presets[1].Explode {
		t.Error("expected burst to be an explode preset")
	}
}

func TestMustLoadLevel(t *testing.T) {
	level := NewLevelLoader().MustLoadLevel("levels/arena.tmx")

	if got := len(level.Walls); got != 7 {
		t.Fatalf("expected 7 walls, got %d", got)
	}
	if level.Width != 640 || level.Height != 368 {
		t.Errorf("level size = %dx%d, want 640x368", level.Width, level.Height)
	}

	// Border walls come first and enclose the playable area.
	top := level.Walls[0]
	if top.X != 0 || top.Y != 0 || top.Width != 640 {
		t.Errorf("top wall = %+v, want full-width at origin", top)
	}

	if got := len(level.EmitterSpawns); got != 1 {
		t.Fatalf("expected 1 emitter spawn, got %d", got)
	}
	spawn := level.EmitterSpawns[0]
	if spawn.Preset != "fountain" {
		t.Errorf("spawn preset = %q, want %q", spawn.Preset, "fountain")
	}
	if spawn.X != 320 || spawn.Y != 120 {
		t.Errorf("spawn at (%v, %v), want (320, 120)", spawn.X, spawn.Y)
	}
}

func TestMustLoadLevelsFindsArena(t *testing.T) {
	levels := NewLevelLoader().MustLoadLevels()

	if len(levels) == 0 {
		t.Fatal("expected at least one level")
	}
	if levels[0].Name != "levels/arena.tmx" {
		t.Errorf("level name = %q, want %q", levels[0].Name, "levels/arena.tmx")
	}
}
