package metrics

import (
	"github.com/san-kum/stride/internal/sim"
	"github.com/san-kum/stride/internal/trigger"
)

// TriggerEvents counts trigger callbacks, optionally of a single kind.
type TriggerEvents struct {
	name  string
	kinds map[trigger.EventKind]bool
	count int
}

func NewTriggerEvents(kinds ...trigger.EventKind) *TriggerEvents {
	t := &TriggerEvents{name: "trigger_events"}
	if len(kinds) > 0 {
		t.kinds = make(map[trigger.EventKind]bool, len(kinds))
		for _, k := range kinds {
			t.kinds[k] = true
		}
		if len(kinds) == 1 {
			t.name = "trigger_" + kinds[0].String()
		}
	}
	return t
}

func (t *TriggerEvents) Name() string { return t.name }

func (t *TriggerEvents) Observe(f sim.Frame) {
	for _, e := range f.Events {
		if t.kinds == nil || t.kinds[e.Kind] {
			t.count++
		}
	}
}

func (t *TriggerEvents) Value() float64 { return float64(t.count) }
func (t *TriggerEvents) Reset()         { t.count = 0 }

// PeakCallbacks is the most trigger callbacks delivered in one frame.
type PeakCallbacks struct {
	peak int
}

func NewPeakCallbacks() *PeakCallbacks { return &PeakCallbacks{} }

func (p *PeakCallbacks) Name() string { return "peak_callbacks" }

func (p *PeakCallbacks) Observe(f sim.Frame) {
	if len(f.Events) > p.peak {
		p.peak = len(f.Events)
	}
}

func (p *PeakCallbacks) Value() float64 { return float64(p.peak) }
func (p *PeakCallbacks) Reset()         { p.peak = 0 }
