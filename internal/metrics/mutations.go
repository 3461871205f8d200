// Package metrics summarises a page run frame by frame.
package metrics

import (
	"github.com/san-kum/stride/internal/sim"
)

// Mutations counts property writes over a run. The document counter is
// cumulative, so the metric works on per-frame deltas; detached subtrees
// can make the counter drop, which reads as zero work.
type Mutations struct {
	total int
	peak  int
	last  int
	seen  bool
}

func NewMutations() *Mutations { return &Mutations{} }

func (m *Mutations) Name() string { return "mutations" }

func (m *Mutations) Observe(f sim.Frame) {
	if m.seen {
		d := f.Mutations - m.last
		if d > 0 {
			m.total += d
			if d > m.peak {
				m.peak = d
			}
		}
	}
	m.last = f.Mutations
	m.seen = true
}

func (m *Mutations) Value() float64 { return float64(m.total) }

// Peak is the largest number of writes made in one frame.
func (m *Mutations) Peak() int { return m.peak }

func (m *Mutations) Reset() {
	*m = Mutations{}
}

// PeakMutations reports Mutations.Peak as its own metric.
type PeakMutations struct {
	Mutations
}

func NewPeakMutations() *PeakMutations { return &PeakMutations{} }

func (p *PeakMutations) Name() string   { return "peak_mutations" }
func (p *PeakMutations) Value() float64 { return float64(p.peak) }
