package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bounce/internal/anim"
	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/curve"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/viz"
	"github.com/spf13/cobra"
)

var (
	shapeName  string
	params     []float64
	fps        int
	points     int
	duration   float64
	width      int
	resolution int
	mode       string
	redraw     bool
	// Config file
	configFile string
	// Preset name
	preset   string
	logLevel string
	quiet    bool
	// Trace options
	traceFrames int
	traceHeight int
)

// main registers the commands and runs the animation when no subcommand is
// given. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "bounce",
		Short:        "points bouncing along an arc in one terminal line",
		SilenceUsage: true,
		RunE:         runAnimation,
	}
	addAnimationFlags(rootCmd)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the animation on stdout",
		Args:  cobra.NoArgs,
		RunE:  runAnimation,
	}
	addAnimationFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the animation in a full-screen view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addAnimationFlags(liveCmd)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "plot the trailing point's render position over time",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	addAnimationFlags(traceCmd)
	traceCmd.Flags().IntVar(&traceFrames, "frames", 160, "number of frames to simulate")
	traceCmd.Flags().IntVar(&traceHeight, "height", 15, "plot height")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}
	addAnimationFlags(configCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %s, %d points, %d fps, %s\n", name, p.Shape, p.Animation.Points, p.Animation.FPS, p.Animation.Mode)
			}
			return nil
		},
	}

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list curve families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("shapes:")
			for _, name := range curve.Families() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, traceCmd, configCmd, presetsCmd, shapesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addAnimationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&shapeName, "shape", config.DefaultShape, "curve family (ellipse, parabola)")
	cmd.Flags().Float64SliceVar(&params, "params", nil, "shape parameters: x_extent,y_extent,curvature")
	cmd.Flags().IntVar(&fps, "fps", anim.DefaultFrameRate, "frames per second")
	cmd.Flags().IntVar(&points, "points", anim.DefaultPoints, "number of points")
	cmd.Flags().Float64Var(&duration, "time", anim.DefaultDuration, "duration in seconds (-1 runs forever)")
	cmd.Flags().IntVar(&width, "width", anim.DefaultWidth, "output width in columns")
	cmd.Flags().IntVar(&resolution, "resolution", anim.DefaultResolution, "steps across the output width")
	cmd.Flags().StringVar(&mode, "mode", string(anim.ModeTrail), "point mode (trail, sync)")
	cmd.Flags().BoolVar(&redraw, "redraw", false, "redraw frames in place instead of one line each")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "do not print the summary")
}

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("shape") {
		cfg.Shape = shapeName
	}
	if flags.Changed("params") {
		if len(params) != 3 {
			return nil, fmt.Errorf("%w: --params takes 3 values (x_extent,y_extent,curvature), got %d", curve.ErrInvalidParams, len(params))
		}
		cfg.SetShapeValues(params)
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = fps
	}
	if flags.Changed("points") {
		cfg.Animation.Points = points
	}
	if flags.Changed("time") {
		cfg.Animation.Duration = duration
	}
	if flags.Changed("width") {
		cfg.Animation.Width = width
	}
	if flags.Changed("resolution") {
		cfg.Animation.Resolution = resolution
	}
	if flags.Changed("mode") {
		cfg.Animation.Mode = mode
	}
	if flags.Changed("redraw") {
		cfg.Animation.Redraw = redraw
	}

	return cfg, nil
}

func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

func buildAnimator(cmd *cobra.Command, opts ...anim.Option) (*anim.Animator, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	shape, ac, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	opts = append([]anim.Option{anim.WithLogger(logger)}, opts...)
	for _, m := range metrics.Default() {
		opts = append(opts, anim.WithMetric(m))
	}
	a, err := anim.New(shape, ac, opts...)
	if err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}

func runAnimation(cmd *cobra.Command, args []string) error {
	a, cfg, err := buildAnimator(cmd, anim.WithOutput(os.Stdout))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := a.Run(ctx)
	if cfg.Animation.Redraw {
		fmt.Println()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if !quiet {
		fmt.Fprintln(os.Stderr, viz.Summary(cfg.Shape, result))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	a, _, err := buildAnimator(cmd, anim.WithOutput(io.Discard))
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(a))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	if traceFrames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", traceFrames)
	}

	renders := make([]float64, 0, traceFrames)
	flips := make([]int, 0)
	recorder := anim.ObserverFunc(func(f anim.Frame) {
		renders = append(renders, f.Points[len(f.Points)-1].Render)
		if f.Flipped {
			flips = append(flips, f.Number)
		}
	})

	a, cfg, err := buildAnimator(cmd,
		anim.WithOutput(io.Discard),
		anim.WithPacer(anim.NoPacer{}),
		anim.WithObserver(recorder),
	)
	if err != nil {
		return err
	}

	for i := 0; i < traceFrames && !a.Done(); i++ {
		a.Step()
	}

	if len(renders) == 0 {
		return fmt.Errorf("no frames to plot")
	}

	graph := asciigraph.Plot(renders,
		asciigraph.Height(traceHeight),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s: trailing point render position", cfg.Shape)),
	)
	fmt.Println(graph)
	fmt.Println()

	flipText := make([]string, len(flips))
	for i, f := range flips {
		flipText[i] = fmt.Sprintf("%d", f)
	}
	fmt.Printf("frames: %d\n", len(renders))
	fmt.Printf("reversals at frames: %s\n", strings.Join(flipText, ", "))
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if _, _, err := cfg.Build(); err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
