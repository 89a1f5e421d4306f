package scenes

import (
	"math"
	"time"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/palette"
	"github.com/san-kum/animgen/internal/raster"
	"github.com/san-kum/animgen/internal/rng"
)

const (
	cartoonSize   = 400
	cartoonFrames = 20
)

var (
	cartoonBG  = palette.MustParse("#FFD1DC")
	blobBody   = palette.MustParse("#87CEEB")
	blobShadow = palette.MustParse("#E5B7C2")
)

// BlobPoints returns an organic closed outline of n points around (x, y).
// Each radius is scaled by a factor in [0.8, 1.2) drawn from s.
func BlobPoints(x, y, rx, ry float64, n int, s *rng.Stream) []raster.Point {
	out := make([]raster.Point, n)
	for i := range out {
		a := float64(i) / float64(n) * 2 * math.Pi
		k := 0.8 + s.Float64()*0.4
		out[i] = raster.Pt(x+math.Cos(a)*rx*k, y+math.Sin(a)*ry*k)
	}
	return out
}

// PupilOffset moves a pupil of radius pupil toward target, keeping it at
// least 2px inside a sclera of radius size.
func PupilOffset(ex, ey, size, pupil float64, target raster.Point) (float64, float64) {
	dx, dy := target.X-ex, target.Y-ey
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	reach := math.Min(dist, size-pupil-2)
	return dx / dist * reach, dy / dist * reach
}

func drawEye(c *raster.Canvas, x, y, size float64, target raster.Point) {
	c.EllipseOutline(x-size, y-size, x+size, y+size, palette.White, palette.Black, 2)

	pupil := size * 0.4
	ox, oy := PupilOffset(x, y, size, pupil, target)
	px, py := x+ox, y+oy
	c.Ellipse(px-pupil, py-pupil, px+pupil, py+pupil, palette.Black)

	shine := pupil * 0.4
	sx, sy := px+pupil*0.2, py-pupil*0.5
	c.Ellipse(sx, sy, sx+shine, sy+shine, palette.White)
}

// FlyPosition traces a figure eight above the character.
func FlyPosition(t float64) raster.Point {
	return raster.Pt(
		cartoonSize/2+math.Cos(t)*100,
		cartoonSize/2-100+math.Sin(t*2)*50,
	)
}

// BlobbyCartoon is a squashing blob whose eyes follow a fly. seed fixes the
// outline of its shadow.
func BlobbyCartoon(seed uint64) *Scene {
	spec := anim.Spec{
		Name:   "blobby_cartoon",
		Width:  cartoonSize,
		Height: cartoonSize,
		Frames: cartoonFrames,
		Scale:  1,
		Delay:  100 * time.Millisecond,
		Dir:    "cartoon_style",
		File:   "blobby_cartoon.gif",
	}

	return New(spec, cartoonBG, func(c *raster.Canvas, f int) {
		t := phase(f, cartoonFrames)

		fly := FlyPosition(t)
		c.Line(fly.X-5, fly.Y, fly.X+5, fly.Y, palette.Black, 1)
		c.Ellipse(fly.X-2, fly.Y-2, fly.X+2, fly.Y+2, palette.Black)

		bounce := math.Abs(math.Sin(t))
		sx, sy := 1+0.1*bounce, 1-0.1*bounce
		cx, cy := float64(cartoonSize/2), float64(cartoonSize-80)
		const radius = 80
		w, h := radius*sx, radius*sy

		c.Polygon(BlobPoints(cx, cy+h, w*0.8, 10, 12, rng.New(seed)), blobShadow)
		c.EllipseOutline(cx-w, cy-h, cx+w, cy+h, blobBody, palette.Black, 3)

		spacing := 30 * sx
		eyeY := cy - 20*sy
		drawEye(c, cx-spacing, eyeY, 20, fly)
		drawEye(c, cx+spacing, eyeY, 20, fly)

		c.Arc(cx-10, cy+10, cx+10, cy+30, 0, 180, palette.Black, 2)
	})
}
