package metrics

import (
	"math"

	"github.com/san-kum/stride/internal/sim"
)

// ScrollDistance is the total distance the window travelled, in pixels.
type ScrollDistance struct {
	total float64
	last  float64
	seen  bool
}

func NewScrollDistance() *ScrollDistance { return &ScrollDistance{} }

func (s *ScrollDistance) Name() string { return "scroll_distance" }

func (s *ScrollDistance) Observe(f sim.Frame) {
	if s.seen {
		s.total += math.Abs(f.ScrollY - s.last)
	}
	s.last = f.ScrollY
	s.seen = true
}

func (s *ScrollDistance) Value() float64 { return s.total }

func (s *ScrollDistance) Reset() {
	*s = ScrollDistance{}
}
