// Package encode writes frame sequences as looping animated images.
package encode

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/setanarut/apng"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/raster"
)

type Format string

const (
	FormatGIF  Format = "gif"
	FormatAPNG Format = "apng"
)

var ErrUnknownFormat = errors.New("encode: unknown format")

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatGIF, "":
		return FormatGIF, nil
	case FormatAPNG, "png":
		return FormatAPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext is the file extension written for the format.
func (f Format) Ext() string {
	if f == FormatAPNG {
		return ".png"
	}
	return ".gif"
}

// Animation is an ordered frame sequence with a uniform delay. Frames are
// upscaled by Scale with nearest-neighbor sampling when encoded.
type Animation struct {
	Frames []image.Image
	Delay  time.Duration
	Scale  int
}

// Centiseconds is the per-frame delay in the unit both containers use.
func (a Animation) Centiseconds() uint16 {
	cs := math.Round(float64(a.Delay) / float64(10*time.Millisecond))
	return uint16(max(cs, 1))
}

func (a Animation) scaled() []image.Image {
	out := make([]image.Image, len(a.Frames))
	for i, f := range a.Frames {
		out[i] = raster.Upscale(f, a.Scale)
	}
	return out
}

// EncodeGIF writes a looping GIF. Each frame gets its own palette.
func EncodeGIF(w io.Writer, a Animation) error {
	if len(a.Frames) == 0 {
		return anim.ErrNoFrames
	}
	g := gif.GIF{LoopCount: 0}
	delay := int(a.Centiseconds())
	for _, frame := range a.scaled() {
		g.Image = append(g.Image, Quantize(frame))
		g.Delay = append(g.Delay, delay)
	}
	return gif.EncodeAll(w, &g)
}

// EncodeAPNG writes a looping animated PNG in full color.
func EncodeAPNG(w io.Writer, a Animation) error {
	if len(a.Frames) == 0 {
		return anim.ErrNoFrames
	}
	frames := a.scaled()
	images := make([]image.Image, len(frames))
	delays := make([]uint16, len(frames))
	for i, f := range frames {
		// apng needs one color model across frames and rejects sub-images.
		images[i] = raster.Copy(f)
		delays[i] = a.Centiseconds()
	}
	return apng.EncodeAll(w, &apng.APNG{Images: images, Delays: delays, LoopCount: 0})
}

func Encode(w io.Writer, a Animation, format Format) error {
	switch format {
	case FormatGIF:
		return EncodeGIF(w, a)
	case FormatAPNG:
		return EncodeAPNG(w, a)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save writes a to dir/name, creating dir if needed. The extension of name
// is replaced with the format's. It returns the written path.
func Save(dir, name string, a Animation, format Format) (string, error) {
	if len(a.Frames) == 0 {
		return "", anim.ErrNoFrames
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("encode: create output dir: %w", err)
		}
	}
	path := filepath.Join(dir, strings.TrimSuffix(name, filepath.Ext(name))+format.Ext())

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := Encode(bw, a, format); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}
