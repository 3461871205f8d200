package automation

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/stride/internal/sim"
)

// RunScenario plays one scenario on a fresh page.
func RunScenario(ctx context.Context, sc *Scenario, setup sim.Setup, dt float64, metrics ...sim.Metric) (*sim.Result, error) {
	r := sim.New(setup)
	defer r.Close()
	for _, m := range metrics {
		r.AddMetric(m)
	}
	res, err := r.Run(ctx, sc.Cues(), sc.Config(dt))
	if err != nil {
		return res, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	return res, nil
}

// Viewport is one screen size in a sweep.
type Viewport struct {
	Name   string
	Width  float64
	Height float64
}

// SweepResult holds one viewport's outcome.
type SweepResult struct {
	Viewport Viewport
	ReadyAt  float64
	Events   int
	Errors   int
	Metrics  map[string]float64
}

// RunSweep plays the same scenario at several viewport sizes concurrently.
func RunSweep(ctx context.Context, sc *Scenario, viewports []Viewport, base sim.Setup, dt float64, metrics func() []sim.Metric) ([]SweepResult, error) {
	jobs := make([]sim.Job, len(viewports))
	for i, vp := range viewports {
		setup := base
		setup.Width, setup.Height = vp.Width, vp.Height
		jobs[i] = sim.Job{Name: vp.Name, Setup: setup, Cues: sc.Cues(), Config: sc.Config(dt), Metrics: metrics}
	}
	results, err := sim.RunAll(ctx, jobs, 0)
	if err != nil {
		return nil, fmt.Errorf("sweep %s: %w", sc.Name, err)
	}
	out := make([]SweepResult, len(results))
	for i, res := range results {
		out[i] = SweepResult{
			Viewport: viewports[i],
			ReadyAt:  res.ReadyAt,
			Events:   len(res.Events),
			Errors:   len(res.Errors),
			Metrics:  res.Metrics,
		}
	}
	return out, nil
}

// WalkConfig describes a random wheel session.
type WalkConfig struct {
	Steps    int
	Interval float64
	MaxStep  float64
	Seed     int64
}

// RandomWalk builds a scenario of random wheel steps biased downwards, so
// reveals fire and then reverse at random points.
func RandomWalk(cfg WalkConfig) *Scenario {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sc := &Scenario{
		Name:        fmt.Sprintf("random-walk-%d", cfg.Seed),
		Description: "random wheel steps",
		Duration:    float64(cfg.Steps)*cfg.Interval + 1,
	}
	for i := 0; i < cfg.Steps; i++ {
		by := (rng.Float64()*1.6 - 0.6) * cfg.MaxStep
		sc.Steps = append(sc.Steps, Step{At: float64(i) * cfg.Interval, Action: ActionScrollBy, By: by})
	}
	return sc
}

// WalkResult is one random trial.
type WalkResult struct {
	Trial     int
	Seed      int64
	FinalY    float64
	Events    int
	Unstarted int
}

// RunWalks plays trials random walks concurrently, seeding trial i with
// cfg.Seed+i. Unstarted counts cues that hit a page that was not ready.
func RunWalks(ctx context.Context, cfg WalkConfig, trials int, setup sim.Setup, dt float64) ([]WalkResult, error) {
	jobs := make([]sim.Job, trials)
	seeds := make([]int64, trials)
	for i := range jobs {
		wc := cfg
		wc.Seed = cfg.Seed + int64(i)
		seeds[i] = wc.Seed
		sc := RandomWalk(wc)
		jobs[i] = sim.Job{Name: sc.Name, Setup: setup, Cues: sc.Cues(), Config: sc.Config(dt)}
	}
	results, err := sim.RunAll(ctx, jobs, 0)
	if err != nil {
		return nil, err
	}
	out := make([]WalkResult, len(results))
	for i, res := range results {
		out[i] = WalkResult{
			Trial:     i,
			Seed:      seeds[i],
			FinalY:    res.Scroll[len(res.Scroll)-1],
			Events:    len(res.Events),
			Unstarted: len(res.Errors),
		}
	}
	return out, nil
}
