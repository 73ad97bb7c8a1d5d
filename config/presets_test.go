package config

import (
	"image/color"
	"math"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff8800", color.RGBA{255, 136, 0, 255}, false},
		{"ff8800", color.RGBA{255, 136, 0, 255}, false},
		{"#ff880080", color.RGBA{255, 136, 0, 128}, false},
		{"", White, false},
		{"#fff", White, true},
		{"#gggggg", White, true},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSpanRadians(t *testing.T) {
	min, max := Span{Min: -180, Max: 90}.Radians()
	if math.Abs(min+math.Pi) > 1e-12 {
		t.Errorf("min = %v, want %v", min, -math.Pi)
	}
	if math.Abs(max-math.Pi/2) > 1e-12 {
		t.Errorf("max = %v, want %v", max, math.Pi/2)
	}
}
