package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Decay multiplies every RGB channel of pm by factor in place, truncating.
// Alpha is left alone. A factor in [0, 1] never brightens a pixel.
func Decay(pm *gg.Pixmap, factor float64) {
	data := pm.Data()
	for i := 0; i < len(data); i += 4 {
		data[i] = uint8(float64(data[i]) * factor)
		data[i+1] = uint8(float64(data[i+1]) * factor)
		data[i+2] = uint8(float64(data[i+2]) * factor)
	}
}

// Copy returns an independent RGBA copy of img.
func Copy(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Upscale enlarges img by an integer factor, duplicating pixels.
func Upscale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, b, xdraw.Src, nil)
	return out
}

// Brightness is the mean of (R+G+B)/3 over all pixels, in [0, 255].
func Brightness(img image.Image) float64 {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0
	}
	var sum float64
	forEachRGB(img, func(r, g, bl uint8) {
		sum += float64(int(r)+int(g)+int(bl)) / 3
	})
	return sum / float64(n)
}

// ChangedPixels counts positions whose RGB differs between a and b.
// Images of different size count every pixel as changed.
func ChangedPixels(a, b image.Image) int {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return max(ab.Dx()*ab.Dy(), bb.Dx()*bb.Dy())
	}
	changed := 0
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			r1, g1, b1, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			r2, g2, b2, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			if r1>>8 != r2>>8 || g1>>8 != g2>>8 || b1>>8 != b2>>8 {
				changed++
			}
		}
	}
	return changed
}

// CountColors returns the number of distinct opaque RGB colors in img,
// stopping once limit is exceeded.
func CountColors(img image.Image, limit int) int {
	seen := make(map[color.RGBA]struct{})
	forEachRGB(img, func(r, g, b uint8) {
		if len(seen) <= limit {
			seen[color.RGBA{r, g, b, 255}] = struct{}{}
		}
	})
	return len(seen)
}

func forEachRGB(img image.Image, fn func(r, g, b uint8)) {
	if rgba, ok := img.(*image.RGBA); ok {
		b := rgba.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := rgba.Pix[(y-b.Min.Y)*rgba.Stride:]
			for x := 0; x < b.Dx(); x++ {
				fn(row[x*4], row[x*4+1], row[x*4+2])
			}
		}
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			fn(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
}

// Distance is the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
