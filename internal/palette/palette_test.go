package palette

import (
	"image/color"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	cyan := RGB(0, 255, 255)
	purple := RGB(150, 0, 200)

	tests := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"start", 0, cyan},
		{"end", 1, purple},
		{"below range", -0.5, cyan},
		{"above range", 3, purple},
		{"middle", 0.5, RGB(75, 128, 228)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(cyan, purple, tt.t)
			if diff(got, tt.want) > 1 {
				t.Errorf("Lerp(%f) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#87CEEB", RGB(135, 206, 235)},
		{"#ffd1dc", RGB(255, 209, 220)},
		{"pink", RGB(255, 192, 203)},
		{"Black", Black},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("not-a-color"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestGradient(t *testing.T) {
	g := Gradient{RGB(0, 0, 0), RGB(100, 100, 100), RGB(200, 200, 200)}
	if got := g.At(0); got != g[0] {
		t.Errorf("At(0) = %v", got)
	}
	if got := g.At(1); got != g[2] {
		t.Errorf("At(1) = %v", got)
	}
	if got := g.At(0.5); got != g[1] {
		t.Errorf("At(0.5) = %v", got)
	}
	if got := g.At(0.25); diff(got, RGB(50, 50, 50)) > 1 {
		t.Errorf("At(0.25) = %v", got)
	}
}

func TestScale(t *testing.T) {
	got := Scale(RGB(100, 200, 250), 0.9)
	want := RGB(90, 180, 225)
	if got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
	if got := Scale(RGB(200, 200, 200), 2); got != White {
		t.Errorf("Scale should clamp, got %v", got)
	}
}

func TestHueRing(t *testing.T) {
	ring := HueRing(6, 0, 90, 60)
	if len(ring) != 6 {
		t.Fatalf("expected 6 colors, got %d", len(ring))
	}
	seen := make(map[color.RGBA]bool)
	for _, c := range ring {
		if c.A != 255 {
			t.Errorf("expected opaque color, got %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected distinct hues, got %d unique", len(seen))
	}
}

func diff(a, b color.RGBA) int {
	d := 0
	for _, p := range [][2]uint8{{a.R, b.R}, {a.G, b.G}, {a.B, b.B}} {
		v := int(p[0]) - int(p[1])
		if v < 0 {
			v = -v
		}
		if v > d {
			d = v
		}
	}
	return d
}
