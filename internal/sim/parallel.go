package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one independent page run.
type Job struct {
	Name    string
	Setup   Setup
	Cues    []Cue
	Config  Config
	Metrics func() []Metric
}

// RunAll runs jobs concurrently, one page per goroutine, and returns
// results in job order. The first failure cancels the rest.
func RunAll(ctx context.Context, jobs []Job, limit int) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			r := New(job.Setup)
			defer r.Close()
			if job.Metrics != nil {
				for _, m := range job.Metrics() {
					r.AddMetric(m)
				}
			}
			res, err := r.Run(ctx, job.Cues, job.Config)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
