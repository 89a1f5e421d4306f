package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"slices"
	"strconv"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/metrics"
)

type FrameStats struct {
	Generator string               `json:"generator"`
	Width     int                  `json:"width"`
	Height    int                  `json:"height"`
	Frames    int                  `json:"frames"`
	DelayMS   int64                `json:"delay_ms"`
	ElapsedMS int64                `json:"elapsed_ms"`
	Metrics   map[string]float64   `json:"metrics"`
	Series    map[string][]float64 `json:"series"`
}

func NewFrameStats(res *anim.Result, series ...metrics.Series) *FrameStats {
	s := &FrameStats{
		Generator: res.Spec.Name,
		Width:     res.Spec.Width,
		Height:    res.Spec.Height,
		Frames:    len(res.Frames),
		DelayMS:   res.Spec.Delay.Milliseconds(),
		ElapsedMS: res.Elapsed.Milliseconds(),
		Metrics:   res.Metrics,
		Series:    make(map[string][]float64, len(series)),
	}
	for _, m := range series {
		s.Series[m.Name()] = slices.Clone(m.Series())
	}
	return s
}

func WriteJSON(w io.Writer, stats *FrameStats) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stats)
}

// WriteCSV writes one row per frame with a column per series, sorted by
// name. Series shorter than the frame count leave their leading cells
// empty, so the motion series lines up with the frame it ends on.
func WriteCSV(w io.Writer, stats *FrameStats) error {
	names := make([]string, 0, len(stats.Series))
	for name := range stats.Series {
		names = append(names, name)
	}
	slices.Sort(names)

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"frame"}, names...)); err != nil {
		return err
	}
	for f := 0; f < stats.Frames; f++ {
		row := []string{strconv.Itoa(f)}
		for _, name := range names {
			vals := stats.Series[name]
			i := f - (stats.Frames - len(vals))
			if i < 0 || i >= len(vals) {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(vals[i], 'f', 4, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
