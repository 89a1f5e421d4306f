// Package palette holds color parsing and interpolation shared by all
// generators.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hsluv/hsluv-go"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// named covers the CSS color names the scenes refer to by name.
var named = map[string]color.RGBA{
	"black":  Black,
	"white":  White,
	"pink":   {255, 192, 203, 255},
	"red":    {255, 0, 0, 255},
	"orange": {255, 165, 0, 255},
	"green":  {0, 128, 0, 255},
	"yellow": {255, 255, 0, 255},
	"blue":   {0, 0, 255, 255},
	"purple": {128, 0, 128, 255},
	"gray":   {128, 128, 128, 255},
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Parse accepts "#rrggbb" or a named color.
func Parse(s string) (color.RGBA, error) {
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette: parse %q: %w", s, err)
	}
	return toRGBA(c), nil
}

// MustParse is Parse for package-level color tables.
func MustParse(s string) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp interpolates a to b linearly in RGB. t is clamped to [0, 1], so
// Lerp(a, b, 0) == a and Lerp(a, b, 1) == b.
func Lerp(a, b color.Color, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	return toRGBA(ca.BlendRgb(cb, t))
}

// Gradient is a piecewise linear color ramp over evenly spaced stops.
type Gradient []color.RGBA

// At returns the color at t in [0, 1].
func (g Gradient) At(t float64) color.RGBA {
	switch len(g) {
	case 0:
		return Black
	case 1:
		return g[0]
	}
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(g)-1)
	i := int(pos)
	if i >= len(g)-1 {
		return g[len(g)-1]
	}
	return Lerp(g[i], g[i+1], pos-float64(i))
}

// Scale multiplies the RGB channels by f, clamped to the byte range.
func Scale(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*f)))
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

// WithAlpha returns c with straight alpha a in [0, 1].
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	return color.NRGBA{c.R, c.G, c.B, uint8(math.Round(a * 255))}
}

// HSLuv converts a perceptual hue (degrees), saturation and lightness (0-100).
func HSLuv(h, s, l float64) color.RGBA {
	r, g, b := hsluv.HsluvToRGB(math.Mod(h+360, 360), s, l)
	return toRGBA(colorful.Color{R: r, G: g, B: b})
}

// HueRing returns n colors evenly spaced around the HSLuv hue circle with
// constant lightness, starting at hue start.
func HueRing(n int, start, s, l float64) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = HSLuv(start+360*float64(i)/float64(n), s, l)
	}
	return out
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
