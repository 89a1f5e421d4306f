package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Point is a position in canvas pixels.
type Point struct{ X, Y float64 }

func Pt(x, y float64) Point { return Point{x, y} }

type Canvas struct {
	dc      *gg.Context
	pm      *gg.Pixmap
	err     error
	aliased bool
}

// New returns a w x h canvas filled with bg.
func New(w, h int, bg color.Color) *Canvas {
	pm := gg.NewPixmap(w, h)
	c := &Canvas{
		dc: gg.NewContext(w, h, gg.WithPixmap(pm)),
		pm: pm,
	}
	c.dc.ClearWithColor(Straight(bg))
	return c
}

func (c *Canvas) Width() int  { return c.pm.Width() }
func (c *Canvas) Height() int { return c.pm.Height() }

// Context exposes the underlying gg context for free-form paths.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Pixmap is the live pixel buffer.
func (c *Canvas) Pixmap() *gg.Pixmap { return c.pm }

func (c *Canvas) Err() error { return c.err }

// Image returns a copy of the current pixels.
func (c *Canvas) Image() *image.RGBA {
	return c.pm.ToImage()
}

// View is an *image.RGBA sharing the canvas pixels, for image/draw
// compositing. Writes through it are visible to later gg drawing.
func (c *Canvas) View() *image.RGBA {
	return &image.RGBA{
		Pix:    c.pm.Data(),
		Stride: c.Width() * 4,
		Rect:   image.Rect(0, 0, c.Width(), c.Height()),
	}
}

// Fill fills the whole canvas with col.
func (c *Canvas) Fill(col color.Color) {
	c.dc.ClearWithColor(Straight(col))
}

// Rect fills the inclusive box (x0, y0)-(x1, y1).
func (c *Canvas) Rect(x0, y0, x1, y1 float64, fill color.Color) {
	if c.err != nil {
		return
	}
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	if c.aliased {
		c.hardRect(x0, y0, x1, y1, fill)
		return
	}
	c.dc.DrawRectangle(x0, y0, x1-x0+1, y1-y0+1)
	c.fill(fill)
}

// Ellipse fills the ellipse inscribed in the inclusive box (x0, y0)-(x1, y1).
func (c *Canvas) Ellipse(x0, y0, x1, y1 float64, fill color.Color) {
	if c.err != nil {
		return
	}
	if c.aliased {
		c.hardEllipse(x0, y0, x1, y1, 0, 0, fill)
		return
	}
	c.ellipsePath(x0, y0, x1, y1, 0)
	c.fill(fill)
}

// EllipseOutline fills the ellipse and strokes a border of the given width
// inside the bounding box.
func (c *Canvas) EllipseOutline(x0, y0, x1, y1 float64, fill, outline color.Color, width float64) {
	if c.err != nil {
		return
	}
	if fill != nil {
		c.Ellipse(x0, y0, x1, y1, fill)
	}
	if c.aliased {
		c.hardEllipse(x0, y0, x1, y1, 0, math.Max(width, 1), outline)
		return
	}
	c.ellipsePath(x0, y0, x1, y1, width/2)
	c.stroke(outline, width, gg.LineCapButt)
}

// Polygon fills the closed polygon through pts.
func (c *Canvas) Polygon(pts []Point, fill color.Color) {
	if c.err != nil || len(pts) < 3 {
		return
	}
	if c.aliased {
		poly := make([]Point, len(pts))
		for i, p := range pts {
			poly[i] = Pt(p.X+0.5, p.Y+0.5)
		}
		c.hardPolygon(poly, fill)
		c.hardPolyline(append(pts[:len(pts):len(pts)], pts[0]), fill, 1)
		return
	}
	c.dc.MoveTo(pts[0].X+0.5, pts[0].Y+0.5)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X+0.5, p.Y+0.5)
	}
	c.dc.ClosePath()
	c.fill(fill)
}

// Line strokes a segment between two pixel centers.
func (c *Canvas) Line(x0, y0, x1, y1 float64, col color.Color, width float64) {
	c.Polyline([]Point{{x0, y0}, {x1, y1}}, col, width)
}

// Polyline strokes connected segments through pts.
func (c *Canvas) Polyline(pts []Point, col color.Color, width float64) {
	if c.err != nil || len(pts) < 2 {
		return
	}
	if c.aliased {
		c.hardPolyline(pts, col, width)
		return
	}
	c.dc.MoveTo(pts[0].X+0.5, pts[0].Y+0.5)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X+0.5, p.Y+0.5)
	}
	lineCap := gg.LineCapButt
	if width <= 1 {
		// 1px lines cover both end pixels.
		lineCap = gg.LineCapSquare
	}
	c.stroke(col, width, lineCap)
}

// Arc strokes part of the ellipse inscribed in the inclusive box, from start
// to end degrees measured clockwise from three o'clock.
func (c *Canvas) Arc(x0, y0, x1, y1, start, end float64, col color.Color, width float64) {
	if c.err != nil {
		return
	}
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	for end < start {
		end += 360
	}
	cx, cy := (x0+x1+1)/2, (y0+y1+1)/2
	rx, ry := (x1-x0+1)/2-width/2, (y1-y0+1)/2-width/2
	steps := int(math.Max(8, math.Ceil((end-start)/6)))
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := (start + (end-start)*float64(i)/float64(steps)) * math.Pi / 180
		pts = append(pts, Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
	}
	if c.aliased {
		for i := range pts {
			pts[i] = Pt(pts[i].X-0.5, pts[i].Y-0.5)
		}
		c.hardPolyline(pts, col, width)
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.stroke(col, width, gg.LineCapButt)
}

// Point sets a single pixel.
func (c *Canvas) Point(x, y float64, col color.Color) {
	if c.aliased {
		px := int(math.Floor(x))
		c.span(int(math.Floor(y)), px, px, col)
		return
	}
	c.dc.SetPixel(int(math.Floor(x)), int(math.Floor(y)), Straight(col))
}

// Row fills the horizontal run [x0, x1] at row y without anti-aliasing.
func (c *Canvas) Row(y, x0, x1 int, col color.Color) {
	if y < 0 || y >= c.Height() {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.Width()-1)
	r, g, b, a := rgba8(col)
	data := c.pm.Data()
	for x := x0; x <= x1; x++ {
		i := (y*c.Width() + x) * 4
		data[i], data[i+1], data[i+2], data[i+3] = r, g, b, a
	}
}

func (c *Canvas) ellipsePath(x0, y0, x1, y1, inset float64) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	rx := (x1-x0+1)/2 - inset
	ry := (y1-y0+1)/2 - inset
	c.dc.DrawEllipse((x0+x1+1)/2, (y0+y1+1)/2, math.Max(rx, 0.5), math.Max(ry, 0.5))
}

func (c *Canvas) fill(col color.Color) {
	c.setColor(col)
	if err := c.dc.Fill(); err != nil {
		c.err = err
	}
}

func (c *Canvas) stroke(col color.Color, width float64, lineCap gg.LineCap) {
	c.setColor(col)
	c.dc.SetLineWidth(math.Max(width, 1))
	c.dc.SetLineCap(lineCap)
	if err := c.dc.Stroke(); err != nil {
		c.err = err
	}
}

// setColor passes straight alpha to gg; color.Color.RGBA is premultiplied.
func (c *Canvas) setColor(col color.Color) {
	k := Straight(col)
	c.dc.SetRGBA(k.R, k.G, k.B, k.A)
}

// Straight converts col to gg's non-premultiplied float color.
func Straight(col color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return gg.RGBA2(float64(n.R)/255, float64(n.G)/255, float64(n.B)/255, float64(n.A)/255)
}

func order(a, b float64) (float64, float64) {
	if b < a {
		return b, a
	}
	return a, b
}

func rgba8(col color.Color) (uint8, uint8, uint8, uint8) {
	r, g, b, a := col.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}
