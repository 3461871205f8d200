package timeline

import (
	"math"

	"github.com/san-kum/stride/internal/motion"
)

// Scrub is a timeline whose playhead is set directly from a progress
// fraction, typically reported by a scrubbed trigger. Step delays and
// durations place each step inside the [0,1] range; a scrub whose steps
// all have zero length maps every step over the whole range.
type Scrub struct {
	tracks    []*track
	total     float64
	progress  float64
	cancelled bool
	detach    []func()
}

func BuildScrub(steps []Step) (*Scrub, error) {
	tracks, err := prepare(steps)
	if err != nil {
		return nil, err
	}
	s := &Scrub{tracks: tracks}
	for _, tr := range tracks {
		s.total = math.Max(s.total, tr.Delay+tr.Duration)
	}
	if s.total == 0 {
		for _, tr := range tracks {
			tr.Duration = 1
		}
		s.total = 1
	}
	return s, nil
}

// SetProgress renders the scrub at fraction f, clamped to [0,1].
func (s *Scrub) SetProgress(f float64) {
	if s == nil || s.cancelled {
		return
	}
	f = math.Max(0, math.Min(1, f))
	head := f * s.total
	n := len(s.tracks)
	for i := 0; i < n; i++ {
		idx := i
		if f < s.progress {
			idx = n - 1 - i
		}
		tr := s.tracks[idx]
		tr.apply(tr.local(head, false))
	}
	s.progress = f
}

func (s *Scrub) Progress() float64 { return s.progress }

func (s *Scrub) Bind(detach func()) {
	if s == nil || detach == nil {
		return
	}
	if s.cancelled {
		detach()
		return
	}
	s.detach = append(s.detach, detach)
}

func (s *Scrub) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	detach := s.detach
	s.detach = nil
	for _, fn := range detach {
		fn()
	}
}

func (s *Scrub) Cancelled() bool { return s == nil || s.cancelled }

func (s *Scrub) Steps() []StepInfo { return infos(s.tracks) }

var _ motion.Canceller = (*Scrub)(nil)
