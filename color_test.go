package gfx

import (
	"errors"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", Red},
		{"White", White},
		{"#000", Black},
		{"#00f", Blue},
		{"ff0000", Red},
		{"#00ff0080", Color{0, 1, 0, 128.0 / 255}},
		{"#0f08", Color{0, 1, 0, 136.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "#12", "notacolor", "#gggggg"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidColor", bad, err)
		}
	}
}

func TestColorLinear(t *testing.T) {
	mid := RGB(0.5, 0.5, 0.5).Linear()
	if math.Abs(float64(mid.R)-0.2140411) > 1e-5 {
		t.Errorf("Linear().R = %v, want 0.2140411", mid.R)
	}
	if mid.A != 1 {
		t.Errorf("Linear().A = %v, want 1", mid.A)
	}
	if White.Linear() != (LinearColor{1, 1, 1, 1}) {
		t.Errorf("White.Linear() = %+v", White.Linear())
	}

	back := mid.SRGB()
	if math.Abs(float64(back.R)-0.5) > 1e-4 {
		t.Errorf("SRGB() round trip R = %v", back.R)
	}
}

func TestColorNRGBA(t *testing.T) {
	c, ok := ColorFromName("cornflowerblue")
	if !ok {
		t.Fatal("cornflowerblue not found")
	}
	got := c.NRGBA()
	if got.R != 100 || got.G != 149 || got.B != 237 || got.A != 255 {
		t.Errorf("NRGBA() = %v, want {100 149 237 255}", got)
	}
}
