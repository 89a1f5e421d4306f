package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/san-kum/animgen/internal/config"
	"github.com/san-kum/animgen/internal/registry"
	"github.com/san-kum/animgen/internal/viz"
)

var (
	outDir     string
	format     string
	seed       uint64
	sceneFPS   int
	configFile string
	preset     string
	theme      string
	verbose    bool
	useTUI     bool

	csvPath  string
	jsonPath string
	plotW    int

	traceOut       string
	traceParticles int
	traceFrames    int

	logger = slog.Default()
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "animgen [name|group...]",
		Short:             "procedural animation generator",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              renderTargets,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&outDir, "out", config.DefaultOutputDir, "output root directory")
	pf.StringVar(&format, "format", config.DefaultFormat, "output format (gif, apng)")
	pf.Uint64Var(&seed, "seed", config.DefaultSeed, "random seed")
	pf.IntVar(&sceneFPS, "scene-fps", config.DefaultSceneFPS, "frame rate of the declarative scenes")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&theme, "theme", "nebula", "terminal color theme")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	renderCmd := &cobra.Command{
		Use:   "render [name|group...]",
		Short: "render generators (all when none given)",
		RunE:  renderTargets,
	}
	renderCmd.Flags().BoolVar(&useTUI, "tui", false, "interactive progress view")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "interactive progress view")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list generators and their outputs",
		RunE:  listGenerators,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [name]",
		Short: "render in memory and plot per-frame metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  frameStats,
	}
	statsCmd.Flags().StringVar(&csvPath, "csv", "", "write frame stats as csv")
	statsCmd.Flags().StringVar(&jsonPath, "json", "", "write frame stats as json")
	statsCmd.Flags().IntVar(&plotW, "width", 70, "plot width")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "write nebula flow particle trajectories as svg",
		Args:  cobra.NoArgs,
		RunE:  traceFlow,
	}
	traceCmd.Flags().StringVarP(&traceOut, "output", "o", "nebula_trace.svg", "svg output path")
	traceCmd.Flags().IntVar(&traceParticles, "particles", 300, "number of particles to trace")
	traceCmd.Flags().IntVar(&traceFrames, "frames", 0, "frames to simulate (0 = generator frame count)")

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list available presets for a generator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for generator: %s\n", args[0])
				return nil
			}
			fmt.Println(viz.Title.Render("presets for " + args[0]))
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, listCmd, statsCmd, traceCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if verbose {
		gg.SetLogger(logger)
	}
	viz.SetTheme(theme)
	return nil
}

// loadConfig resolves the effective config: defaults or the config file,
// then presets for the targets, then flags the user set explicitly.
func loadConfig(cmd *cobra.Command, targets []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if preset != "" {
		found := false
		for _, name := range targets {
			if p := config.GetPreset(name, preset); p != nil {
				cfg.Apply(p)
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown preset: %s for %v", preset, targets)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutputDir = outDir
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("scene-fps") {
		cfg.SceneFPS = sceneFPS
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func listGenerators(cmd *cobra.Command, args []string) error {
	reg := registry.New()
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	opts := cfg.Options()

	fmt.Println(viz.HeaderStyle.Render("generators"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGROUP\tSIZE\tFRAMES\tSCALE\tDELAY\tOUTPUT")
	for _, group := range reg.Groups() {
		for _, name := range reg.Group(group) {
			gen, err := reg.Get(name, opts)
			if err != nil {
				return err
			}
			spec := gen.Spec()
			fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%s\t%s\n",
				name, group, spec.Width, spec.Height, spec.Frames, spec.Scale, spec.Delay, spec.Path(cfg.OutputDir))
		}
	}
	return w.Flush()
}
