package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stride/internal/automation"
	"github.com/san-kum/stride/internal/config"
	"github.com/san-kum/stride/internal/ease"
	"github.com/san-kum/stride/internal/export"
	"github.com/san-kum/stride/internal/gui"
	"github.com/san-kum/stride/internal/metrics"
	"github.com/san-kum/stride/internal/page"
	"github.com/san-kum/stride/internal/section"
	"github.com/san-kum/stride/internal/sim"
	"github.com/san-kum/stride/internal/storage"
	"github.com/san-kum/stride/internal/trigger"
	"github.com/san-kum/stride/internal/tui"
	"github.com/san-kum/stride/internal/viz"
)

var (
	configFile string
	preset     string
	dataDir    string
	logLevel   string
	logFile    string
	width      float64
	height     float64
	seed       int64
	dt         float64
	live       bool
	frameRate  int
	metricList []string
	theme      string
	at         float64
	scenario   string
	outPath    string
	trials     int
	walkSteps  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "stride",
		Short:        "scroll-driven animation for the sneaker promo page",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, closeLog, err := tuiOptions()
			if err != nil {
				return err
			}
			defer closeLog()
			return viz.RunMenu(opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "viewport preset")
	pf.StringVar(&dataDir, "data", "", "session directory (default from config)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.Float64Var(&width, "width", 0, "viewport width")
	pf.Float64Var(&height, "height", 0, "viewport height")
	pf.Int64Var(&seed, "seed", 0, "random seed")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "browse the page in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, closeLog, err := tuiOptions()
			if err != nil {
				return err
			}
			defer closeLog()
			return viz.Run(opts)
		},
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "", "colour theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "browse the page in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, closeLog, err := newLogger(cfg, io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()
			gui.Run(gui.Options{Name: presetName(), Setup: setupFor(cfg, log), FPS: cfg.FPS, Step: cfg.Scroll.Step})
			return nil
		},
	}

	simulateCmd := &cobra.Command{
		Use:   "simulate [scenario]",
		Short: "play a scenario headlessly and print what fired",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulate,
	}
	simulateCmd.Flags().Float64Var(&dt, "dt", 0, "step (default 1/fps)")
	simulateCmd.Flags().BoolVar(&live, "live", false, "render frames in the terminal")
	simulateCmd.Flags().IntVar(&frameRate, "fps", 30, "live frame rate")
	simulateCmd.Flags().StringSliceVar(&metricList, "metrics", nil, "metrics to report (default all)")

	recordCmd := &cobra.Command{
		Use:   "record [scenario...]",
		Short: "run scenarios concurrently and save sessions",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().Float64Var(&dt, "dt", 0, "step (default 1/fps)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded sessions",
		RunE:  listSessions,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session] [node] [prop]",
		Short: "plot a recorded track",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  plotSession,
	}
	plotCmd.Flags().StringVar(&outPath, "svg", "", "also write the track as svg")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "snapshot the viewport as svg",
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().Float64Var(&at, "at", 6, "seconds after load")
	exportSVGCmd.Flags().StringVar(&scenario, "scenario", "", "scenario to play first")
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "frame.svg", "output file")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [session]",
		Short: "export a session as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return storage.New(cfg.Store).ExportSession(os.Stdout, args[0])
		},
	}

	curveCmd := &cobra.Command{
		Use:   "curve [ease]",
		Short: "plot an easing curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotCurve,
	}

	timelineCmd := &cobra.Command{
		Use:   "timeline [section]",
		Short: "list the timelines a section builds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listTimelines,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list viewport presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVIEWPORT\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0fx%.0f\t%s\n", name, p.Viewport.Width, p.Viewport.Height, p.Description)
			}
			return w.Flush()
		},
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDURATION\tSTEPS\tDESCRIPTION")
			for _, name := range automation.Builtins() {
				sc, err := automation.Builtin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%.1fs\t%d\t%s\n", name, sc.Duration, len(sc.Steps), sc.Description)
			}
			return w.Flush()
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "play a scenario at every preset viewport",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&dt, "dt", 0, "step (default 1/fps)")

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "run random wheel sessions",
		RunE:  runWalks,
	}
	walkCmd.Flags().Float64Var(&dt, "dt", 0, "step (default 1/fps)")
	walkCmd.Flags().IntVar(&trials, "trials", 8, "number of sessions")
	walkCmd.Flags().IntVar(&walkSteps, "steps", 40, "wheel steps per session")

	rootCmd.AddCommand(tuiCmd, guiCmd, simulateCmd, recordCmd, listCmd, plotCmd, exportSVGCmd, exportJSONCmd,
		curveCmd, timelineCmd, presetsCmd, scenariosCmd, sweepCmd, walkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers the config file, preset and flags over the defaults.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
	}
	if width > 0 {
		cfg.Viewport.Width = width
	}
	if height > 0 {
		cfg.Viewport.Height = height
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if dataDir != "" {
		cfg.Store = dataDir
	}
	if theme != "" {
		cfg.Theme = theme
	}
	return cfg, cfg.Validate()
}

// newLogger logs to --log-file when given and to fallback otherwise.
func newLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("%w: log level %q", config.ErrInvalid, cfg.LogLevel)
	}
	out, closeFn := fallback, func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		out, closeFn = f, func() { f.Close() }
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func setupFor(cfg *config.Config, log *slog.Logger) sim.Setup {
	return sim.Setup{
		Width:        cfg.Viewport.Width,
		Height:       cfg.Viewport.Height,
		Seed:         cfg.Seed,
		SmoothScroll: cfg.Scroll.SmoothDuration,
		Loading: section.LoadingTiming{
			Logo:     cfg.Loading.LogoDuration,
			Progress: cfg.Loading.ProgressDuration,
			Fade:     cfg.Loading.FadeDuration,
		},
		Log: log,
	}
}

func presetName() string {
	if preset != "" {
		return preset
	}
	return "desktop"
}

func stepFor(cfg *config.Config) float64 {
	if dt > 0 {
		return dt
	}
	return cfg.Dt()
}

// headless loads config and a stderr logger for the non-interactive commands.
func headless() (*config.Config, *slog.Logger, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	log, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, closeLog, nil
}

func tuiOptions() (viz.Options, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return viz.Options{}, nil, err
	}
	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return viz.Options{}, nil, err
	}
	return viz.Options{
		Name:  presetName(),
		Setup: setupFor(cfg, log),
		FPS:   cfg.FPS,
		Step:  cfg.Scroll.Step,
		Theme: cfg.Theme,
	}, closeLog, nil
}

func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func resolveScenario(args []string) (*automation.Scenario, error) {
	name := "scroll-through"
	if len(args) > 0 {
		name = args[0]
	}
	return automation.Resolve(name)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := headless()
	if err != nil {
		return err
	}
	defer closeLog()

	sc, err := resolveScenario(args)
	if err != nil {
		return err
	}
	ms := metrics.Defaults()
	if len(metricList) > 0 {
		if ms, err = metrics.ByName(metricList); err != nil {
			return err
		}
	}

	r := sim.New(setupFor(cfg, log))
	defer r.Close()
	for _, m := range ms {
		r.AddMetric(m)
	}

	var lr *tui.LiveRenderer
	if live {
		lr = tui.NewLiveRenderer(os.Stdout, sc.Name, frameRate)
		lr.Realtime = true
		r.AddObserver(lr)
		lr.Start()
	}

	ctx, cancel := interruptible()
	defer cancel()
	res, err := r.Run(ctx, sc.Cues(), sc.Config(stepFor(cfg)))
	if lr != nil {
		lr.Stop()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if res == nil {
		return nil
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	fmt.Printf("viewport: %.0fx%.0f\n", cfg.Viewport.Width, cfg.Viewport.Height)
	fmt.Printf("ready at: %.2fs\n", res.ReadyAt)
	fmt.Printf("frames:   %d\n\n", res.Frames)

	if !live {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tKIND\tTRIGGER\tSCROLL")
		for _, e := range res.Events {
			if e.Kind == trigger.EventProgress {
				continue
			}
			fmt.Fprintf(w, "%.2fs\t%s\t%s\t%.0f\n", e.Time, e.Kind, e.Name, e.ScrollY)
		}
		w.Flush()
		fmt.Println()
	}

	printMetrics(res.Metrics)
	for _, e := range res.Errors {
		fmt.Printf("cue error: %v\n", e)
	}
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Printf("%-16s %.3f\n", k, m[k])
	}
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := headless()
	if err != nil {
		return err
	}
	defer closeLog()

	step := stepFor(cfg)
	scenarios := make([]*automation.Scenario, len(args))
	jobs := make([]sim.Job, len(args))
	for i, name := range args {
		sc, err := automation.Resolve(name)
		if err != nil {
			return err
		}
		scenarios[i] = sc
		jobs[i] = sim.Job{
			Name:    sc.Name,
			Setup:   setupFor(cfg, log.With("scenario", sc.Name)),
			Cues:    sc.Cues(),
			Config:  sc.Config(step),
			Metrics: metrics.Defaults,
		}
	}

	ctx, cancel := interruptible()
	defer cancel()
	results, err := sim.RunAll(ctx, jobs, 0)
	if err != nil {
		return err
	}

	st := storage.New(cfg.Store)
	if err := st.Init(); err != nil {
		return err
	}
	for i, res := range results {
		sc := scenarios[i]
		id, err := st.Save(storage.Session{
			Scenario: sc.Name,
			Width:    cfg.Viewport.Width,
			Height:   cfg.Viewport.Height,
			Seed:     cfg.Seed,
			Dt:       step,
			Duration: jobs[i].Config.Duration,
		}, res)
		if err != nil {
			return err
		}
		log.Info("session saved", "id", id, "frames", res.Frames, "events", len(res.Events))
		fmt.Printf("saved %s\n", id)
	}
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sessions, err := storage.New(cfg.Store).List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tVIEWPORT\tDURATION\tREADY\tEVENTS\tTRACKS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fx%.0f\t%.2fs\t%.2fs\t%d\t%d\n",
			s.ID,
			s.Scenario,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Width, s.Height,
			s.Duration,
			s.ReadyAt,
			s.Events,
			len(s.Tracks),
		)
	}
	return w.Flush()
}

func plotSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.Store)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	prop := ""
	if len(args) > 2 {
		prop = args[2]
	}
	values, times, err := st.LoadTrack(args[0], args[1], prop)
	if err != nil {
		return fmt.Errorf("%w (recorded: %s)", err, strings.Join(append([]string{"scroll"}, meta.Tracks...), ", "))
	}

	data := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return fmt.Errorf("no data to plot")
	}

	caption := args[1]
	if prop != "" {
		caption += "." + prop
	}
	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(data))
	fmt.Println(asciigraph.Plot(data, asciigraph.Height(12), asciigraph.Width(80), asciigraph.Caption(caption+" vs time")))

	if outPath != "" {
		svg := export.TrackSVG(times, values, 800, 240, "#ff6b00")
		if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", outPath)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := headless()
	if err != nil {
		return err
	}
	defer closeLog()

	var cues []sim.Cue
	if scenario != "" {
		sc, err := automation.Resolve(scenario)
		if err != nil {
			return err
		}
		cues = sc.Cues()
	}

	r := sim.New(setupFor(cfg, log))
	defer r.Close()
	ctx, cancel := interruptible()
	defer cancel()
	if _, err := r.Run(ctx, cues, sim.Config{Dt: cfg.Dt(), Duration: at}); err != nil {
		return err
	}

	env := r.Composer().Env()
	if err := os.WriteFile(outPath, []byte(export.FrameSVG(env.Doc, env.Win)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (t=%.2fs, scroll=%.0f, %s)\n", outPath, r.Time(), env.Win.ScrollY(), r.Composer().State())
	return nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("curves:")
		for _, name := range ease.Names() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}
	f, err := ease.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Println(asciigraph.Plot(ease.Sample(f, 80), asciigraph.Height(16), asciigraph.Caption(args[0])))
	return nil
}

// listTimelines runs the page to ready and prints what each controller built.
func listTimelines(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := headless()
	if err != nil {
		return err
	}
	defer closeLog()

	r := sim.New(setupFor(cfg, log))
	defer r.Close()
	r.Start()
	comp := r.Composer()
	for comp.State() != page.Ready && r.Time() < 60 {
		r.Step(cfg.Dt())
	}

	found := false
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SECTION\tTIMELINE\tKIND\tTRIGGER\tSTEP\tPROPS\tDELAY\tDURATION")
	for _, c := range comp.Controllers() {
		if len(args) > 0 && c.Name() != args[0] {
			continue
		}
		found = true
		for _, in := range c.Timelines() {
			for _, s := range in.Steps {
				props := make([]string, len(s.Props))
				for i, p := range s.Props {
					props[i] = string(p)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.2f\t%.2f\n",
					in.Section, in.Label, in.Kind, in.Trigger, s.Label, strings.Join(props, ","), s.Delay, s.Duration)
			}
		}
	}
	if !found && len(args) > 0 {
		return fmt.Errorf("%w: %q", page.ErrUnknownSection, args[0])
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := headless()
	if err != nil {
		return err
	}
	defer closeLog()

	sc, err := automation.Resolve(args[0])
	if err != nil {
		return err
	}
	var viewports []automation.Viewport
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		viewports = append(viewports, automation.Viewport{Name: name, Width: p.Viewport.Width, Height: p.Viewport.Height})
	}

	ctx, cancel := interruptible()
	defer cancel()
	results, err := automation.RunSweep(ctx, sc, viewports, setupFor(cfg, log), stepFor(cfg), metrics.Defaults)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VIEWPORT\tSIZE\tREADY\tEVENTS\tERRORS\tMUTATIONS\tBUDGET\tSETTLED")
	for _, res := range results {
		fmt.Fprintf(w, "%s\t%.0fx%.0f\t%.2fs\t%d\t%d\t%.0f\t%.3f\t%.2fs\n",
			res.Viewport.Name, res.Viewport.Width, res.Viewport.Height,
			res.ReadyAt, res.Events, res.Errors,
			res.Metrics["mutations"], res.Metrics["budget"], res.Metrics["settled_at"])
	}
	return w.Flush()
}

func runWalks(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := headless()
	if err != nil {
		return err
	}
	defer closeLog()

	wc := automation.WalkConfig{Steps: walkSteps, Interval: 0.25, MaxStep: cfg.Scroll.Step * 3, Seed: cfg.Seed}
	ctx, cancel := interruptible()
	defer cancel()
	results, err := automation.RunWalks(ctx, wc, trials, setupFor(cfg, log), stepFor(cfg))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRIAL\tSEED\tFINAL SCROLL\tEVENTS\tUNSTARTED")
	for _, res := range results {
		fmt.Fprintf(w, "%d\t%d\t%.0f\t%d\t%d\n", res.Trial, res.Seed, res.FinalY, res.Events, res.Unstarted)
	}
	return w.Flush()
}
