package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/animgen/internal/anim"
	"github.com/san-kum/animgen/internal/config"
	"github.com/san-kum/animgen/internal/encode"
	"github.com/san-kum/animgen/internal/metrics"
	"github.com/san-kum/animgen/internal/registry"
	"github.com/san-kum/animgen/internal/viz"
)

func renderTargets(cmd *cobra.Command, args []string) error {
	reg := registry.New()
	names, err := reg.Resolve(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, names)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobs := make([]viz.Job, len(names))
	for i, name := range names {
		jobs[i] = viz.Job{Name: name, Run: func(ctx context.Context) (viz.Outcome, error) {
			return renderOne(ctx, reg, name, cfg, logger)
		}}
	}

	if useTUI {
		return runTUI(ctx, jobs)
	}

	start := time.Now()
	for _, job := range jobs {
		out, err := job.Run(ctx)
		if err != nil {
			fmt.Printf("%s %s\n", viz.StatusFail.Render("✗"), job.Name)
			return err
		}
		fmt.Printf("%s %-18s %s\n", viz.StatusDone.Render("✓"), job.Name,
			viz.Subtle.Render(fmt.Sprintf("%3d frames  %s", out.Frames, out.Path)))
	}
	fmt.Println(viz.Subtle.Render(fmt.Sprintf("%d animations in %s", len(jobs), time.Since(start).Round(time.Millisecond))))
	return nil
}

func runTUI(ctx context.Context, jobs []viz.Job) error {
	model := viz.NewProgress(ctx, jobs)
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	if err := model.Err(); err != nil {
		return err
	}
	if model.Canceled() {
		return anim.ErrCanceled
	}
	return nil
}

// renderOne renders a generator with the default metrics and writes its
// animation under the configured output root.
func renderOne(ctx context.Context, reg *registry.Registry, name string, cfg *config.Config, log *slog.Logger) (viz.Outcome, error) {
	gen, err := reg.Get(name, cfg.Options())
	if err != nil {
		return viz.Outcome{}, err
	}
	fmtv, err := encode.ParseFormat(cfg.Format)
	if err != nil {
		return viz.Outcome{}, err
	}

	runner := anim.NewRunner(log)
	for _, m := range metrics.Default() {
		runner.AddMetric(m)
	}
	res, err := runner.Run(ctx, gen)
	if err != nil {
		if errors.Is(err, anim.ErrCanceled) {
			log.Warn("render canceled", "generator", name, "frames", len(res.Frames))
		}
		return viz.Outcome{}, err
	}

	spec := res.Spec
	path, err := encode.Save(filepath.Join(cfg.OutputDir, spec.Dir), spec.File, encode.Animation{
		Frames: res.Frames,
		Delay:  spec.Delay,
		Scale:  spec.Scale,
	}, fmtv)
	if err != nil {
		return viz.Outcome{}, err
	}
	log.Debug("animation written", "generator", name, "path", path, "metrics", res.Metrics)
	return viz.Outcome{Path: path, Frames: len(res.Frames), Elapsed: res.Elapsed}, nil
}
