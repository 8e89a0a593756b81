package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/export"
	"github.com/san-kum/gravbox/internal/gui"
	"github.com/san-kum/gravbox/internal/metrics"
	"github.com/san-kum/gravbox/internal/sim"
	"github.com/san-kum/gravbox/internal/tui"
	"github.com/san-kum/gravbox/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	gravity    float64
	spawnMass  float64
	seed       int64
	theme      string
	ticks      int
	live       bool
	svgPath    string
	frameRate  int
	benchTicks int
)

// main registers commands and flags and executes the root command.
// With no subcommand it opens the terminal preset menu.
// It exits the process with status 1 if command execution returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "gravbox",
		Short:        "2d gravity toy: bodies attract, collide and merge",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a preset universe")
	pf.Float64Var(&gravity, "g", config.DefaultG, "gravitational constant")
	pf.Float64Var(&spawnMass, "spawn-mass", config.DefaultSpawnMass, "mass of spawned bodies")
	pf.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	rootCmd.Flags().StringVar(&theme, "theme", viz.CurrentTheme.Name, fmt.Sprintf("terminal theme %v", viz.ThemeNames()))

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal UI (preset menu, or the resolved universe with --config/--preset)",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", viz.CurrentTheme.Name, fmt.Sprintf("terminal theme %v", viz.ThemeNames()))

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open a window and click to spawn bodies",
		RunE:  runGUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print statistics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	runCmd.Flags().BoolVar(&live, "live", false, "print ascii frames while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate for --live")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame and center-of-mass track as svg")

	benchCmd := &cobra.Command{
		Use:   "bench [bodies...]",
		Short: "time ticks for increasing body counts",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 200, "ticks per measurement")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, benchCmd, presetsCmd, initCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	applyFlags(cmd, cfg)
	if cfg.Seed == 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies the flags the user set explicitly onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("g") {
		cfg.G = gravity
	}
	if flags.Changed("spawn-mass") {
		cfg.SpawnMass = spawnMass
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("ticks") != nil && flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
}

// menuEntries returns the preset menu with explicitly set flags applied to
// every preset.
func menuEntries(cmd *cobra.Command) ([]viz.Entry, error) {
	entries := viz.PresetEntries()
	for _, e := range entries {
		applyFlags(cmd, e.Config)
		if err := e.Config.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
	}
	return entries, nil
}

func newUniverse(cfg *config.Config) (*sim.Universe, error) {
	src := rand.New(rand.NewSource(cfg.Seed))
	return sim.New(cfg.SimConfig(src), src)
}

func universeName(cfg *config.Config) string {
	switch {
	case preset != "":
		return preset
	case configFile != "":
		return "custom"
	}
	return "sun"
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !viz.SetTheme(theme) {
		return fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
	}
	if preset == "" && configFile == "" {
		entries, err := menuEntries(cmd)
		if err != nil {
			return err
		}
		return viz.RunInteractive(entries, cfg.Seed)
	}

	u, err := newUniverse(cfg)
	if err != nil {
		return err
	}
	return viz.RunLive(u, universeName(cfg), float64(cfg.Width), float64(cfg.Height), cfg.FPS, cfg.Seed)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	u, err := newUniverse(cfg)
	if err != nil {
		return err
	}
	gui.Run(u, universeName(cfg), cfg.Width, cfg.Height, cfg.FPS)
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	u, err := newUniverse(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if live {
		r := tui.NewLiveRenderer(out, float64(cfg.Width), float64(cfg.Height), frameRate)
		r.Start()
		defer r.Stop()
		u.AddObserver(r)
	}

	var track export.Track
	if svgPath != "" {
		u.AddObserver(&track)
	}

	runner := sim.NewRunner(u)
	for _, m := range metrics.Default() {
		runner.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Fprintf(out, "running %s universe for %d ticks...\n", universeName(cfg), cfg.Ticks)
	start := time.Now()

	result, err := runner.Run(ctx, cfg.Ticks)
	if err != nil && result == nil {
		return err
	}

	fmt.Fprintf(out, "completed %d ticks in %v\n", result.Ticks, time.Since(start))
	printResult(out, result)

	if svgPath != "" {
		if werr := writeSVG(svgPath, result, cfg, track.Points); werr != nil {
			return werr
		}
		fmt.Fprintf(out, "\nsvg written to %s\n", svgPath)
	}
	return err
}

func writeSVG(path string, result *sim.Result, cfg *config.Config, track []export.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create svg: %w", err)
	}
	defer f.Close()
	return export.WriteSVG(f, result.Final, cfg.Width, cfg.Height, track)
}

func printResult(out io.Writer, result *sim.Result) {
	fmt.Fprintf(out, "merges: %d\n\n", result.Merges)

	if len(result.Counts) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(result.Counts,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("bodies vs tick"),
		))
		fmt.Fprintln(out)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tX\tY\tVX\tVY\tMASS\tRADIUS\tCOLOR")
	for i, b := range result.Final {
		fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%.3f\t%.3f\t%s\t%.2f\t%s\n", i, b.X, b.Y, b.VX, b.VY, b.Label(), b.Radius, b.Color)
	}
	w.Flush()

	fmt.Fprintln(out, "\nmetrics:")
	for _, m := range metrics.Default() {
		if val, ok := result.Metrics[m.Name()]; ok {
			fmt.Fprintf(out, "  %s: %.6f\n", m.Name(), val)
		}
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	counts := []int{10, 50, 100, 200}
	if len(args) > 0 {
		counts = counts[:0]
		for _, a := range args {
			var n int
			if _, err := fmt.Sscanf(a, "%d", &n); err != nil || n <= 0 {
				return fmt.Errorf("invalid body count: %s", a)
			}
			counts = append(counts, n)
		}
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tTICKS\tTOTAL\tPER TICK")
	for _, n := range counts {
		elapsed, err := benchOnce(n, benchTicks, seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\t%v\t%v\n", n, benchTicks, elapsed, elapsed/time.Duration(benchTicks))
	}
	return w.Flush()
}

// benchOnce scatters n small bodies far apart with G=0, so the body count
// stays constant and only the O(n^2) force pass is measured.
func benchOnce(n, ticks int, seed int64) (time.Duration, error) {
	src := rand.New(rand.NewSource(seed))
	u, err := sim.New(sim.Config{G: 0, SpawnMass: 1}, src)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		if err := u.Spawn(float64(i)*100, 0); err != nil {
			return 0, err
		}
	}
	for i := range u.Bodies {
		u.Bodies[i].VX, u.Bodies[i].VY = 0, 0
	}

	start := time.Now()
	if _, err := sim.NewRunner(u).Run(context.Background(), ticks); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
