package motion

import (
	"image"
	"image/draw"
	"math"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/raster"
)

var face = basicfont.Face7x13

// textWidth estimates the width of a text mobject in scene units.
func textWidth(m *Mobject) float64 {
	return m.Size * float64(utf8.RuneCountInString(m.Text)) * float64(face.Advance) / float64(face.Height)
}

// drawText renders the revealed prefix of the text with the bitmap face,
// enlarged by the nearest integer factor that matches its size. The text
// stays anchored where the full string would be.
func drawText(c *raster.Canvas, cam Camera, m *Mobject) {
	if m.Opacity <= 0 || m.Progress <= 0 || len(m.Anchors) == 0 {
		return
	}
	runes := []rune(m.Text)
	shown := int(math.Ceil(float64(len(runes)) * math.Min(m.Progress, 1)))
	if shown == 0 {
		return
	}

	k := max(1, int(math.Round(m.Size*cam.PixelsPerUnit()/float64(face.Height))))
	w, h := len(runes)*face.Advance, face.Height

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(string(runes[:shown]))

	big := image.NewAlpha(image.Rect(0, 0, w*k, h*k))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)

	center := cam.ToPixel(m.Anchors[0])
	origin := image.Pt(int(center.X)-w*k/2, int(center.Y)-h*k/2)
	src := image.NewUniform(palette.WithAlpha(m.Fill, m.Opacity))
	draw.DrawMask(c.View(), big.Bounds().Add(origin), src, image.Point{}, big, image.Point{}, draw.Over)
}
