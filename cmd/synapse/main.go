package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/synapse/internal/config"
	"github.com/san-kum/synapse/internal/console"
	"github.com/san-kum/synapse/internal/export"
	"github.com/san-kum/synapse/internal/field"
	"github.com/san-kum/synapse/internal/metrics"
	"github.com/san-kum/synapse/internal/storage"
	"github.com/san-kum/synapse/internal/tui"
	"github.com/san-kum/synapse/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	nodeCount  int
	seed       int64
	frameRate  int
	rain       bool
	// Headless runs
	frames   int
	width    float64
	height   float64
	pointerX float64
	pointerY float64
	fast     bool
	outFile  string
)

func main() {
	closeLog := setupLogging()
	defer closeLog()

	rootCmd := &cobra.Command{
		Use:   "synapse",
		Short: "neural field portfolio for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".synapse", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "field preset")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	rootCmd.PersistentFlags().IntVar(&nodeCount, "nodes", field.DefaultNodeCount, "number of nodes")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFPS, "frames per second")
	rootCmd.Flags().BoolVar(&rain, "rain", false, "start with falling characters")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run the field headless and store the last frame as svg",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 300, "frames to run")
	snapshotCmd.Flags().Float64Var(&width, "width", 1280, "field width")
	snapshotCmd.Flags().Float64Var(&height, "height", 720, "field height")
	snapshotCmd.Flags().Float64Var(&pointerX, "px", 0, "pointer x")
	snapshotCmd.Flags().Float64Var(&pointerY, "py", 0, "pointer y")
	snapshotCmd.Flags().BoolVar(&fast, "fast", false, "step frames without waiting for the clock")
	snapshotCmd.Flags().StringVar(&outFile, "out", "", "also write the svg here")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame time",
		RunE:  benchFrames,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 600, "frames to run")
	benchCmd.Flags().Float64Var(&width, "width", 1920, "field width")
	benchCmd.Flags().Float64Var(&height, "height", 1080, "field height")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		RunE:  listSnapshots,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list field presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tNODES\tRADIUS\tREPULSION\tSPEED")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%.0f\t%.3f\t%.2f\n", name, p.NodeCount, p.InfluenceRadius, p.Repulsion, p.SpeedRange)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "synapse.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "run the portfolio console on stdin",
		RunE:  runConsole,
	}

	rootCmd.AddCommand(snapshotCmd, benchCmd, listCmd, presetsCmd, configCmd, consoleCmd)

	if err := rootCmd.Execute(); err != nil {
		closeLog()
		os.Exit(1)
	}
}

// setupLogging sends log output to a file when SYNAPSE_DEBUG is set; the
// TUI owns the terminal otherwise.
func setupLogging() func() {
	path := os.Getenv("SYNAPSE_DEBUG")
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	if path == "1" {
		path = "synapse-debug.log"
	}
	f, err := tea.LogToFile(path, "synapse")
	if err != nil {
		fmt.Fprintln(os.Stderr, "debug log:", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { f.Close() }
}

// loadConfig layers the config file, the preset and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		if !viz.HasTheme(theme) {
			return nil, fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
		}
		cfg.Display.Theme = theme
	}
	if flags.Changed("nodes") {
		cfg.Field.NodeCount = nodeCount
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = frameRate
	}
	if flags.Changed("rain") {
		cfg.Effects.Rain = rain
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newHeadless(cfg *config.Config, surface field.Surface, clock field.Clock) (*field.Animator, int64, error) {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	t := viz.GetTheme(cfg.Display.Theme)
	params := cfg.FieldParams()
	params.NodeColor, params.EdgeColor = t.NodeColor(), t.EdgeColor()
	anim, err := field.New(surface, clock, params, rand.New(rand.NewSource(s)))
	if err != nil {
		return nil, 0, err
	}
	return anim, s, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames <= 0 {
		return fmt.Errorf("frames must be positive")
	}

	t := viz.GetTheme(cfg.Display.Theme)
	svg := export.NewSVGSurface(string(t.Background))
	stats := metrics.NewFrames(frames)

	var anim *field.Animator
	var usedSeed int64
	if fast {
		clock := field.NewManualClock()
		anim, usedSeed, err = newHeadless(cfg, svg, clock)
		if err != nil {
			return err
		}
		anim.Init(width, height)
		anim.MovePointer(pointerX, pointerY)
		anim.Start()
		for i := 0; i < frames; i++ {
			start := time.Now()
			clock.Tick()
			stats.Observe(anim, time.Since(start))
		}
	} else {
		clock := field.NewTickerClock(cfg.Display.FPS)
		anim, usedSeed, err = newHeadless(cfg, svg, clock)
		if err != nil {
			return err
		}
		anim.Init(width, height)
		anim.MovePointer(pointerX, pointerY)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		clock.OnFrame(func(took time.Duration) {
			if stats.Observe(anim, took); stats.Len() >= frames {
				cancel()
			}
		})

		fmt.Fprintf(cmd.OutOrStdout(), "running %d frames at %d fps\n", frames, cfg.Display.FPS)
		anim.Start()
		if err := clock.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	edges, _ := stats.Mean()
	w, h := anim.Size()
	name := preset
	if name == "" {
		name = "custom"
	}
	id, err := st.Save(storage.SnapshotMetadata{
		Preset:    name,
		Theme:     t.Name,
		Seed:      usedSeed,
		Width:     w,
		Height:    h,
		Nodes:     len(anim.Nodes()),
		Frames:    stats.Len(),
		MeanEdges: edges,
	}, svg.String(), stats.Samples())
	if err != nil {
		return err
	}

	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		if _, err := svg.WriteTo(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	circles, lines := svg.Counts()
	styles := viz.NewStyles(t)
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s %s\n", styles.Accent.Render(id),
		styles.Muted.Render(fmt.Sprintf("(%d nodes, %d edges in last frame, mean %.1f)", circles, lines, edges)))
	return nil
}

func benchFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames <= 0 {
		return fmt.Errorf("frames must be positive")
	}

	canvas := viz.NewCanvas(0, 0)
	clock := field.NewManualClock()
	anim, _, err := newHeadless(cfg, canvas, clock)
	if err != nil {
		return err
	}
	anim.Init(width, height)
	anim.Start()

	stats := metrics.NewFrames(frames)
	start := time.Now()
	for i := 0; i < frames; i++ {
		t0 := time.Now()
		clock.Tick()
		stats.Observe(anim, time.Since(t0))
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	styles := viz.NewStyles(viz.GetTheme(cfg.Display.Theme))
	edges, took := stats.Mean()
	fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("benchmarking %d nodes on %.0fx%.0f", cfg.Field.NodeCount, width, height)))
	fmt.Fprintln(out, viz.Separator(60, styles.Muted))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAMES\tTIME\tMEAN FRAME\tFRAMES/SEC\tMEAN EDGES")
	fmt.Fprintf(w, "%d\t%v\t%v\t%.0f\t%.1f\n", frames, elapsed.Round(time.Millisecond), took, float64(frames)/elapsed.Seconds(), edges)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(stats.DurationSeries(), asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("frame time (ms)")))
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(stats.EdgeSeries(), asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("edges per frame")))
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTHEME\tTIME\tNODES\tFRAMES\tEDGES")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.1f\n",
			s.ID,
			s.Preset,
			s.Theme,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Nodes,
			s.Frames,
			s.MeanEdges,
		)
	}
	return w.Flush()
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	t := viz.GetTheme(cfg.Display.Theme)
	styles := viz.NewStyles(t)
	c := console.New(cfg.Profile)
	c.OnTheme(func(name string) error {
		if !viz.HasTheme(name) {
			return fmt.Errorf("unknown theme: %s (available: %s)", name, strings.Join(viz.ThemeNames(), ", "))
		}
		cfg.Display.Theme = name
		styles = viz.NewStyles(viz.GetTheme(name))
		return nil
	})

	c.Register("presets", "list field presets", func(_ *console.Console, _ []string) ([]string, error) {
		var lines []string
		for _, name := range config.ListPresets() {
			p, _ := config.GetPreset(name)
			lines = append(lines, fmt.Sprintf("%-8s %3d nodes  radius %.0f", name, p.NodeCount, p.InfluenceRadius))
		}
		return lines, nil
	})

	fmt.Fprintln(out, viz.GradientText(cfg.Profile.Name, t.Node, t.Accent))
	fmt.Fprintln(out, styles.KeyHint.Render("type help, exit to leave"))
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, styles.Prompt.Render(c.Prompt))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		exit := c.Execute(scanner.Text())
		for _, l := range lastOutput(c.Scrollback()) {
			if l.Error {
				fmt.Fprintln(out, styles.Error.Render(l.Text))
				continue
			}
			fmt.Fprintln(out, l.Text)
		}
		if errors.Is(exit, console.ErrExit) {
			return nil
		}
	}
}

// lastOutput is everything printed after the most recent input line.
func lastOutput(lines []console.Line) []console.Line {
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].Input {
			return lines[i+1:]
		}
	}
	return lines
}
