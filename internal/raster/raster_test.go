package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

var (
	bg  = color.RGBA{200, 220, 255, 255}
	red = color.RGBA{255, 0, 0, 255}
)

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) int {
		v := int(x) - int(y)
		if v < 0 {
			return -v
		}
		return v
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol
}

func TestNewCanvas(t *testing.T) {
	c := New(8, 6, bg)
	img := c.Image()
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(7, 5); got != bg {
		t.Errorf("background = %v, want %v", got, bg)
	}
}

func TestRectInclusive(t *testing.T) {
	c := New(16, 16, bg)
	c.Rect(4, 4, 8, 8, red)
	if err := c.Err(); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	img := c.Image()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top left", 4, 4, red},
		{"bottom right", 8, 8, red},
		{"center", 6, 6, red},
		{"right of box", 9, 6, bg},
		{"below box", 6, 9, bg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); !near(got, tt.want, 8) {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestEllipseCenterFilled(t *testing.T) {
	c := New(32, 32, bg)
	c.Ellipse(8, 8, 23, 23, red)
	img := c.Image()
	if got := img.RGBAAt(16, 16); !near(got, red, 2) {
		t.Errorf("center = %v, want red", got)
	}
	if got := img.RGBAAt(8, 8); !near(got, bg, 2) {
		t.Errorf("bounding box corner should stay background, got %v", got)
	}
}

func TestRow(t *testing.T) {
	c := New(10, 3, bg)
	c.Row(1, -5, 4, red)
	c.Row(7, 0, 9, red)
	img := c.Image()
	for x := 0; x <= 4; x++ {
		if got := img.RGBAAt(x, 1); got != red {
			t.Errorf("pixel %d = %v, want red", x, got)
		}
	}
	if got := img.RGBAAt(5, 1); got != bg {
		t.Errorf("pixel 5 = %v, want background", got)
	}
}

func TestDecayNeverBrightens(t *testing.T) {
	pm := gg.NewPixmap(4, 4)
	data := pm.Data()
	for i := range data {
		data[i] = uint8(i * 13)
	}
	before := append([]uint8(nil), data...)

	Decay(pm, 0.9)

	for i := range data {
		if i%4 == 3 {
			if data[i] != before[i] {
				t.Errorf("alpha changed at %d: %d -> %d", i, before[i], data[i])
			}
			continue
		}
		limit := float64(before[i])*0.9 + 1
		if float64(data[i]) > limit {
			t.Errorf("channel %d = %d, exceeds %f", i, data[i], limit)
		}
		if data[i] > before[i] {
			t.Errorf("channel %d brightened: %d -> %d", i, before[i], data[i])
		}
	}
}

func TestUpscaleNearestNeighbor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 0, bg)
	src.SetRGBA(0, 1, bg)
	src.SetRGBA(1, 1, red)

	out := Upscale(src, 3).(*image.RGBA)
	if out.Bounds().Dx() != 6 || out.Bounds().Dy() != 6 {
		t.Fatalf("unexpected bounds %v", out.Bounds())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := src.RGBAAt(x/3, y/3)
			if got := out.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if Upscale(src, 1) != image.Image(src) {
		t.Error("scale 1 should return the input unchanged")
	}
}

func TestBrightnessAndChanges(t *testing.T) {
	a := New(4, 4, color.RGBA{30, 60, 90, 255}).Image()
	if got := Brightness(a); got != 60 {
		t.Errorf("Brightness = %f, want 60", got)
	}

	b := Copy(a)
	b.SetRGBA(0, 0, red)
	b.SetRGBA(3, 3, red)
	if got := ChangedPixels(a, b); got != 2 {
		t.Errorf("ChangedPixels = %d, want 2", got)
	}
	if got := CountColors(b, 256); got != 2 {
		t.Errorf("CountColors = %d, want 2", got)
	}
}

func TestStickyError(t *testing.T) {
	c := New(8, 8, bg)
	c.Line(0, 0, 7, 7, red, 1)
	c.Arc(0, 0, 7, 7, 0, 180, red, 2)
	c.Polygon([]Point{{0, 0}, {7, 0}, {3, 7}}, red)
	c.EllipseOutline(1, 1, 6, 6, bg, red, 2)
	if err := c.Err(); err != nil {
		t.Errorf("unexpected draw error: %v", err)
	}
}

func TestAliasedShapesUseOnlyDrawnColors(t *testing.T) {
	blue := color.RGBA{0, 0, 255, 255}
	c := NewAliased(48, 48, bg)
	c.Rect(2.3, 2.7, 9.6, 8.2, red)
	c.Ellipse(10, 10, 30, 24, blue)
	c.EllipseOutline(20, 20, 40, 40, red, blue, 3)
	c.Polygon([]Point{{5, 30}, {15, 44}, {1, 46}}, blue)
	c.Line(0, 47, 47, 20, red, 1)
	c.Line(30, 2, 44, 12, blue, 4)
	c.Arc(4, 4, 40, 40, 180, 300, red, 2)
	if err := c.Err(); err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	img := c.Image()
	allowed := map[color.RGBA]bool{bg: true, red: true, blue: true}
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			if got := img.RGBAAt(x, y); !allowed[got] {
				t.Fatalf("pixel (%d,%d) = %v, want background, red or blue", x, y, got)
			}
		}
	}
}

func TestAliasedGeometry(t *testing.T) {
	c := NewAliased(32, 32, bg)
	if !c.Aliased() {
		t.Fatal("NewAliased canvas should report Aliased")
	}
	c.Rect(4, 4, 8, 8, red)
	c.Ellipse(16, 16, 27, 27, red)
	c.Line(0, 30, 31, 30, red, 1)
	img := c.Image()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"rect top left", 4, 4, red},
		{"rect bottom right", 8, 8, red},
		{"right of rect", 9, 6, bg},
		{"ellipse center", 21, 21, red},
		{"ellipse box corner", 16, 16, bg},
		{"ellipse left edge", 16, 21, red},
		{"line start", 0, 30, red},
		{"line end", 31, 30, red},
		{"under line", 10, 31, bg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAliasedThickLineWidth(t *testing.T) {
	c := NewAliased(20, 20, bg)
	c.Line(10, 2, 10, 17, red, 4)
	img := c.Image()
	n := 0
	for x := 0; x < 20; x++ {
		if img.RGBAAt(x, 9) == red {
			n++
		}
	}
	if n != 4 {
		t.Errorf("vertical line of width 4 covers %d pixels in a row, want 4", n)
	}
}

func TestAliasedTranslucentComposites(t *testing.T) {
	c := NewAliased(4, 4, color.RGBA{0, 0, 0, 255})
	c.Rect(0, 0, 3, 3, color.RGBA{128, 0, 0, 128})
	got := c.Image().RGBAAt(1, 1)
	if got.A != 255 || !near(got, color.RGBA{128, 0, 0, 255}, 1) {
		t.Errorf("half red over black = %v, want {128 0 0 255}", got)
	}
}
