package diagram

import (
	"image/color"
	"math"
	"testing"
)

func colorsEqual(c1, c2 RGBA, eps float64) bool {
	return math.Abs(c1.R-c2.R) < eps &&
		math.Abs(c1.G-c2.G) < eps &&
		math.Abs(c1.B-c2.B) < eps &&
		math.Abs(c1.A-c2.A) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"RRGGBB", "ff0000", Red},
		{"leading hash", "#00ff00", Green},
		{"short RGB", "00f", Blue},
		{"RRGGBBAA", "ffffff80", RGBA{R: 1, G: 1, B: 1, A: 128.0 / 255}},
		{"short RGBA", "f008", RGBA{R: 1, G: 0, B: 0, A: 136.0 / 255}},
		{"invalid length", "zzz-long", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	got := FromColor(c.Color())
	if !colorsEqual(got, c, 1.0/255) {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestColorClamps(t *testing.T) {
	c := RGBA{R: 2, G: -1, B: 0.5, A: 1}
	nrgba, ok := c.Color().(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c.Color())
	}
	if nrgba.R != 255 || nrgba.G != 0 {
		t.Errorf("clamped color = %+v, want R=255 G=0", nrgba)
	}
}
