// Package sim drives a page headlessly at a fixed step, firing scripted
// input and recording what it does.
package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/san-kum/stride/internal/page"
	"github.com/san-kum/stride/internal/section"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/trigger"
)

// Setup describes the page a runner builds.
type Setup struct {
	Width        float64
	Height       float64
	Seed         int64
	SmoothScroll float64
	Loading      section.LoadingTiming
	Content      *site.Content
	Log          *slog.Logger
}

type Runner struct {
	comp      *page.Composer
	log       *slog.Logger
	metrics   []Metric
	observers []Observer
	pending   []trigger.Event
	step      int
	t         float64
}

// New lays the page out and wires its triggers to the runner. The page is
// not started until Start or Run.
func New(s Setup) *Runner {
	if s.Log == nil {
		s.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	content := site.MustContent()
	if s.Content != nil {
		content = *s.Content
	}
	r := &Runner{log: s.Log}
	doc := site.Build(content, s.Width, s.Height)
	env := section.NewEnv(doc, s.Width, s.Height, s.Seed, s.Log, trigger.WithObserver(r.onEvent))
	opts := []page.Option{page.WithLoadingTiming(s.Loading)}
	if s.SmoothScroll > 0 {
		opts = append(opts, page.WithSmoothScroll(s.SmoothScroll))
	}
	r.comp = page.New(env, opts...)
	return r
}

func (r *Runner) onEvent(e trigger.Event) {
	r.pending = append(r.pending, e)
	r.log.Debug("trigger", "name", e.Name, "kind", e.Kind.String(), "progress", e.Progress, "scroll", e.ScrollY)
}

func (r *Runner) Composer() *page.Composer { return r.comp }

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Start starts the page and returns the first frame.
func (r *Runner) Start() Frame {
	r.comp.Start()
	return r.emit()
}

// Step advances the page by dt and returns the frame, after metrics and
// observers have seen it. Interactive front ends drive the page this way.
func (r *Runner) Step(dt float64) Frame {
	r.comp.Tick(dt)
	r.step++
	r.t += dt
	return r.emit()
}

// Time is the page clock.
func (r *Runner) Time() float64 { return r.t }

func (r *Runner) emit() Frame {
	env := r.comp.Env()
	f := Frame{
		Step:      r.step,
		Time:      r.t,
		ScrollY:   env.Win.ScrollY(),
		State:     r.comp.State(),
		Mutations: env.Doc.Mutations(),
		Active:    env.Loop.Active(),
		Events:    r.pending,
		Doc:       env.Doc,
		Win:       env.Win,
	}
	r.pending = nil
	for _, m := range r.metrics {
		m.Observe(f)
	}
	for _, o := range r.observers {
		o.OnFrame(f)
	}
	return f
}

func (r *Runner) Run(ctx context.Context, cues []Cue, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Scroll:  make([]float64, 0, steps+1),
		States:  make([]page.State, 0, steps+1),
		Tracks:  make(map[string][]float64, len(cfg.Track)),
		Metrics: make(map[string]float64),
		ReadyAt: -1,
	}
	for _, m := range r.metrics {
		m.Reset()
	}

	queue := make([]Cue, len(cues))
	copy(queue, cues)
	sort.SliceStable(queue, func(i, j int) bool { return queue[i].At < queue[j].At })

	r.record(result, cfg, r.Start())

	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if result.ReadyAt >= 0 {
			for len(queue) > 0 && r.t-result.ReadyAt >= queue[0].At-1e-9 {
				c := queue[0]
				queue = queue[1:]
				if err := c.Apply(r.comp); err != nil {
					r.log.Warn("cue failed", "cue", c.Label, "at", c.At, "err", err)
					result.Errors = append(result.Errors, fmt.Errorf("cue %q at %.2fs: %w", c.Label, c.At, err))
				}
			}
		}

		r.record(result, cfg, r.Step(cfg.Dt))
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (r *Runner) record(result *Result, cfg Config, f Frame) {
	if f.State == page.Ready && result.ReadyAt < 0 {
		result.ReadyAt = f.Time
	}
	for _, e := range f.Events {
		result.Events = append(result.Events, TimedEvent{Time: f.Time, Event: e})
	}

	result.Times = append(result.Times, f.Time)
	result.Scroll = append(result.Scroll, f.ScrollY)
	result.States = append(result.States, f.State)
	for _, p := range cfg.Track {
		v := math.NaN()
		if n := f.Doc.Ref(p.Node); n != nil {
			v = n.Prop(p.Prop)
		}
		result.Tracks[p.String()] = append(result.Tracks[p.String()], v)
	}
	result.Frames++
}

// Close tears the page down.
func (r *Runner) Close() { r.comp.Close() }

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("sim: duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
