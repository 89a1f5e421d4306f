package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/export"
	"github.com/san-kum/animgen/internal/flowfield"
	"github.com/san-kum/animgen/internal/metrics"
	"github.com/san-kum/animgen/internal/registry"
	"github.com/san-kum/animgen/internal/viz"
)

func frameStats(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig(cmd, []string{name})
	if err != nil {
		return err
	}
	gen, err := registry.New().Get(name, cfg.Options())
	if err != nil {
		return err
	}

	brightness := metrics.NewBrightness()
	motion := metrics.NewMotion()
	series := []metrics.Series{brightness, motion}

	runner := anim.NewRunner(logger)
	runner.AddMetric(brightness)
	runner.AddMetric(motion)
	runner.AddMetric(metrics.NewBrightnessDrift())
	runner.AddMetric(metrics.NewColorBudget(256))
	if fg, ok := gen.(*flowfield.Generator); ok {
		respawns := metrics.NewRespawns(fg)
		runner.AddMetric(respawns)
		series = append(series, respawns)
	}

	res, err := runner.Run(cmd.Context(), gen)
	if err != nil {
		return err
	}
	stats := export.NewFrameStats(res, series...)

	spec := res.Spec
	fmt.Println(viz.HeaderStyle.Render(name))
	fmt.Println(viz.KeyValues(
		"size", fmt.Sprintf("%dx%d (x%d)", spec.Width, spec.Height, spec.Scale),
		"frames", strconv.Itoa(len(res.Frames)),
		"delay", spec.Delay.String(),
		"render time", res.Elapsed.String(),
	))
	fmt.Println()

	keys := make([]string, 0, len(res.Metrics))
	for k := range res.Metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(viz.KeyValues(k, strconv.FormatFloat(res.Metrics[k], 'f', 4, 64)))
	}
	fmt.Println()

	fmt.Println(viz.Plot(brightness.Series(), "mean brightness per frame", plotW, 10))
	fmt.Println()
	fmt.Println(viz.MetricLabel.Render("motion") + viz.Sparkline(motion.Series(), plotW))

	if csvPath != "" {
		if err := writeFile(csvPath, func(f *os.File) error { return export.WriteCSV(f, stats) }); err != nil {
			return err
		}
		fmt.Println(viz.Subtle.Render("csv written to " + csvPath))
	}
	if jsonPath != "" {
		if err := writeFile(jsonPath, func(f *os.File) error { return export.WriteJSON(f, stats) }); err != nil {
			return err
		}
		fmt.Println(viz.Subtle.Render("json written to " + jsonPath))
	}
	return nil
}

func traceFlow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, []string{"nebula_flow"})
	if err != nil {
		return err
	}
	g, err := flowfield.New(cfg.FlowfieldConfig())
	if err != nil {
		return err
	}

	frames := traceFrames
	if frames <= 0 {
		frames = g.Spec().Frames
	}
	tracks, err := export.RecordTracks(g, frames, traceParticles)
	if err != nil {
		return err
	}

	spec := g.Spec()
	if err := writeFile(traceOut, func(f *os.File) error {
		return export.TrajectorySVG(f, tracks, spec.Width, spec.Height)
	}); err != nil {
		return err
	}
	logger.Info("trace written", "path", traceOut, "tracks", len(tracks), "frames", frames)
	fmt.Printf("%s %d tracks written to %s\n", viz.StatusDone.Render("✓"), len(tracks), traceOut)
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
