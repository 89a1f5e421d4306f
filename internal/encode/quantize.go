package encode

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
)

const maxColors = 256

// Quantize converts img to a paletted image of at most 256 colors. Frames
// that already fit are mapped exactly. Otherwise colors are binned at 5 bits
// per channel, the most populated bins become the palette, and pixels are
// mapped with Floyd-Steinberg dithering. The result depends only on the
// pixels of img.
func Quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), nil)

	if pal, ok := exactPalette(img); ok {
		out.Palette = pal
		index := make(map[color.RGBA]uint8, len(pal))
		for i, c := range pal {
			index[c.(color.RGBA)] = uint8(i)
		}
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				out.Pix[y*out.Stride+x] = index[opaque(img.At(b.Min.X+x, b.Min.Y+y))]
			}
		}
		return out
	}

	out.Palette = popularityPalette(img)
	draw.FloydSteinberg.Draw(out, out.Bounds(), img, b.Min)
	return out
}

func exactPalette(img image.Image) (color.Palette, bool) {
	b := img.Bounds()
	seen := make(map[color.RGBA]struct{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			seen[opaque(img.At(x, y))] = struct{}{}
			if len(seen) > maxColors {
				return nil, false
			}
		}
	}
	colors := make([]color.RGBA, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	slices.SortFunc(colors, compareRGBA)

	pal := make(color.Palette, len(colors))
	for i, c := range colors {
		pal[i] = c
	}
	return pal, true
}

type bin struct {
	key     int
	count   int
	r, g, b int
}

func popularityPalette(img image.Image) color.Palette {
	b := img.Bounds()
	bins := make(map[int]*bin)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := opaque(img.At(x, y))
			key := int(c.R>>3)<<10 | int(c.G>>3)<<5 | int(c.B>>3)
			e, ok := bins[key]
			if !ok {
				e = &bin{key: key}
				bins[key] = e
			}
			e.count++
			e.r += int(c.R)
			e.g += int(c.G)
			e.b += int(c.B)
		}
	}

	ranked := make([]*bin, 0, len(bins))
	for _, e := range bins {
		ranked = append(ranked, e)
	}
	slices.SortFunc(ranked, func(a, b *bin) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})
	if len(ranked) > maxColors {
		ranked = ranked[:maxColors]
	}

	pal := make(color.Palette, len(ranked))
	for i, e := range ranked {
		pal[i] = color.RGBA{
			R: uint8(e.r / e.count),
			G: uint8(e.g / e.count),
			B: uint8(e.b / e.count),
			A: 255,
		}
	}
	return pal
}

func opaque(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}
}

func compareRGBA(a, b color.RGBA) int {
	if c := cmp.Compare(a.R, b.R); c != 0 {
		return c
	}
	if c := cmp.Compare(a.G, b.G); c != 0 {
		return c
	}
	return cmp.Compare(a.B, b.B)
}
