package metrics

import (
	"github.com/san-kum/stride/internal/page"
	"github.com/san-kum/stride/internal/sim"
)

// Budget is the share of ready frames whose write count stays within
// threshold. 1 means every frame fit.
type Budget struct {
	name       string
	threshold  int
	violations int
	samples    int
	last       int
	seen       bool
}

func NewBudget(threshold int) *Budget {
	return &Budget{
		name:      "budget",
		threshold: threshold,
	}
}

func (b *Budget) Name() string {
	return b.name
}

func (b *Budget) Observe(f sim.Frame) {
	prev, seen := b.last, b.seen
	b.last, b.seen = f.Mutations, true
	if !seen || f.State != page.Ready {
		return
	}
	b.samples++
	if f.Mutations-prev > b.threshold {
		b.violations++
	}
}

func (b *Budget) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Budget) Reset() {
	b.violations = 0
	b.samples = 0
	b.seen = false
}

// Settled is the time of the last frame that still had animations running,
// or zero if none ever ran.
type Settled struct {
	at float64
}

func NewSettled() *Settled { return &Settled{} }

func (s *Settled) Name() string { return "settled_at" }

func (s *Settled) Observe(f sim.Frame) {
	if f.Active > 0 {
		s.at = f.Time
	}
}

func (s *Settled) Value() float64 { return s.at }
func (s *Settled) Reset()         { s.at = 0 }
