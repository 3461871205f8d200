package metrics

import (
	"fmt"

	"github.com/san-kum/stride/internal/sim"
)

// DefaultBudget is the per-frame write count a ready page should stay under.
const DefaultBudget = 400

// Defaults is the metric set the CLI reports when none are named.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewMutations(),
		NewPeakMutations(),
		NewTriggerEvents(),
		NewPeakCallbacks(),
		NewScrollDistance(),
		NewBudget(DefaultBudget),
		NewSettled(),
	}
}

// ByName builds metrics from their report names.
func ByName(names []string) ([]sim.Metric, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}
	known := make(map[string]sim.Metric)
	for _, m := range Defaults() {
		known[m.Name()] = m
	}
	out := make([]sim.Metric, 0, len(names))
	for _, n := range names {
		m, ok := known[n]
		if !ok {
			return nil, fmt.Errorf("metrics: unknown metric %q", n)
		}
		out = append(out, m)
	}
	return out, nil
}
