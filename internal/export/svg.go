package export

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/animgen/internal/flowfield"
	"github.com/san-kum/animgen/internal/raster"
)

// Track is the path of one particle between two respawns.
type Track struct {
	Points []raster.Point
	Color  color.RGBA
}

// RecordTracks renders frames of g and records the paths of its first n
// particles. A respawn ends the current track of that particle and starts
// a new one.
func RecordTracks(g *flowfield.Generator, frames, n int) ([]Track, error) {
	g.Reset()
	n = min(n, len(g.Simulator().Particles()))

	open := make([]Track, n)
	for i, p := range g.Simulator().Particles()[:n] {
		open[i] = Track{Points: []raster.Point{raster.Pt(p.X, p.Y)}, Color: p.Color}
	}

	var done []Track
	for f := 0; f < frames; f++ {
		if _, err := g.Render(f); err != nil {
			return nil, err
		}
		for i, p := range g.Simulator().Particles()[:n] {
			if p.Age == 0 {
				done = appendTrack(done, open[i])
				open[i] = Track{Color: p.Color}
			}
			open[i].Points = append(open[i].Points, raster.Pt(p.X, p.Y))
		}
	}
	for _, t := range open {
		done = appendTrack(done, t)
	}
	return done, nil
}

func appendTrack(tracks []Track, t Track) []Track {
	if len(t.Points) < 2 {
		return tracks
	}
	return append(tracks, t)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// TrajectorySVG draws tracks as polylines over a dark background.
func TrajectorySVG(w io.Writer, tracks []Track, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Title("particle trajectories")
	canvas.Rect(0, 0, width, height, "fill:#05050a")

	canvas.Gstyle("fill:none;stroke-width:1;stroke-linecap:round")
	for _, t := range tracks {
		xs := make([]int, len(t.Points))
		ys := make([]int, len(t.Points))
		for i, p := range t.Points {
			xs[i] = int(p.X + 0.5)
			ys[i] = int(p.Y + 0.5)
		}
		canvas.Polyline(xs, ys, fmt.Sprintf("stroke:#%02x%02x%02x;stroke-opacity:0.8", t.Color.R, t.Color.G, t.Color.B))
	}
	canvas.Gend()
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}
