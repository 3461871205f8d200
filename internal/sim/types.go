package sim

import (
	"fmt"
	"strings"

	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/page"
	"github.com/san-kum/stride/internal/trigger"
)

// Frame is the page as seen after one fixed step.
type Frame struct {
	Step      int
	Time      float64
	ScrollY   float64
	State     page.State
	Mutations int
	Active    int
	Events    []trigger.Event
	Doc       *dom.Document
	Win       *dom.Window
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

// Cue is a scripted input. At is measured from the moment the page
// becomes ready; cues never fire while it is still loading.
type Cue struct {
	At    float64
	Label string
	Apply func(c *page.Composer) error
}

// Probe names a node property recorded every frame, written node.prop.
type Probe struct {
	Node string
	Prop motion.Prop
}

func (p Probe) String() string { return p.Node + "." + string(p.Prop) }

func ParseProbe(s string) (Probe, error) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return Probe{}, fmt.Errorf("sim: probe %q is not node.prop", s)
	}
	p := Probe{Node: s[:i], Prop: motion.Prop(s[i+1:])}
	if !p.Prop.Valid() {
		return Probe{}, fmt.Errorf("sim: probe %q: %w", s, motion.ErrUnknownProp)
	}
	return p, nil
}

func ParseProbes(list []string) ([]Probe, error) {
	out := make([]Probe, 0, len(list))
	for _, s := range list {
		p, err := ParseProbe(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

type Config struct {
	Dt       float64
	Duration float64
	Track    []Probe
}

// TimedEvent is a trigger event stamped with the frame it fired in.
type TimedEvent struct {
	Time float64
	trigger.Event
}

type Result struct {
	Times   []float64
	Scroll  []float64
	States  []page.State
	Tracks  map[string][]float64
	Events  []TimedEvent
	Metrics map[string]float64
	Errors  []error
	ReadyAt float64
	Frames  int
}
