// Package automation turns scripted scroll scenarios into runner cues.
package automation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stride/internal/page"
	"github.com/san-kum/stride/internal/sim"
)

var (
	ErrUnknownAction = errors.New("automation: unknown action")
	ErrInvalidStep   = errors.New("automation: invalid step")
	ErrNoTarget      = errors.New("automation: target not on the page")
)

// Lead is the time allowed for the loading sequence before a scenario's
// first step; step times are measured from the page becoming ready.
const Lead = 5.0

// Scenario is a scripted visit to the page.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Duration    float64  `yaml:"duration"`
	Track       []string `yaml:"track"`
	Steps       []Step   `yaml:"steps"`
}

// Step is one input. Repeat and Every expand it into a run of identical
// inputs, Every seconds apart.
type Step struct {
	At     float64 `yaml:"at"`
	Action string  `yaml:"action"`
	To     float64 `yaml:"to"`
	By     float64 `yaml:"by"`
	Target string  `yaml:"target"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Repeat int     `yaml:"repeat"`
	Every  float64 `yaml:"every"`
}

const (
	ActionScroll   = "scroll"
	ActionScrollBy = "scroll_by"
	ActionNavigate = "navigate"
	ActionHover    = "hover"
	ActionLeave    = "leave"
	ActionClick    = "click"
	ActionResize   = "resize"
)

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("automation: parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	if sc.Duration <= 0 {
		return fmt.Errorf("%w: scenario %q has no duration", ErrInvalidStep, sc.Name)
	}
	if _, err := sim.ParseProbes(sc.Track); err != nil {
		return err
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	if st.At < 0 {
		return fmt.Errorf("%w: negative time %.2f", ErrInvalidStep, st.At)
	}
	if st.Repeat < 0 || (st.Repeat > 1 && st.Every <= 0) {
		return fmt.Errorf("%w: repeat needs a positive interval", ErrInvalidStep)
	}
	switch st.Action {
	case ActionScroll, ActionScrollBy, ActionLeave:
	case ActionNavigate:
		if st.Target == "" {
			return fmt.Errorf("%w: navigate needs a target", ErrInvalidStep)
		}
	case ActionHover, ActionClick:
	case ActionResize:
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("%w: resize needs a positive size", ErrInvalidStep)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, st.Action)
	}
	return nil
}

// Probes is the scenario's track list.
func (sc *Scenario) Probes() []sim.Probe {
	p, _ := sim.ParseProbes(sc.Track)
	return p
}

// Config is the runner configuration covering the loading lead and the
// scenario itself.
func (sc *Scenario) Config(dt float64) sim.Config {
	return sim.Config{Dt: dt, Duration: Lead + sc.Duration, Track: sc.Probes()}
}

// Cues expands the steps into runner cues.
func (sc *Scenario) Cues() []sim.Cue {
	var cues []sim.Cue
	for _, st := range sc.Steps {
		n := max(st.Repeat, 1)
		for k := 0; k < n; k++ {
			at := st.At + float64(k)*st.Every
			cues = append(cues, sim.Cue{At: at, Label: st.label(), Apply: st.apply})
		}
	}
	return cues
}

func (st Step) label() string {
	switch st.Action {
	case ActionScroll:
		return fmt.Sprintf("scroll %.0f", st.To)
	case ActionScrollBy:
		return fmt.Sprintf("scroll_by %+.0f", st.By)
	case ActionResize:
		return fmt.Sprintf("resize %.0fx%.0f", st.Width, st.Height)
	}
	if st.Target != "" {
		return st.Action + " " + st.Target
	}
	return st.Action
}

func (st Step) apply(c *page.Composer) error {
	switch st.Action {
	case ActionScroll:
		return c.ScrollTo(st.To)
	case ActionScrollBy:
		return c.ScrollBy(st.By)
	case ActionNavigate:
		return c.Navigate(st.Target)
	case ActionLeave:
		c.PointerLeave()
		return nil
	case ActionResize:
		c.Resize(st.Width, st.Height)
		return nil
	}

	x, y, err := st.point(c)
	if err != nil {
		return err
	}
	if st.Action == ActionHover {
		c.PointerMove(x, y)
		return nil
	}
	_, err = c.Click(x, y)
	return err
}

// point resolves the step position in viewport pixels. A target resolves
// to the centre of its layout box at the current scroll.
func (st Step) point(c *page.Composer) (float64, float64, error) {
	if st.Target == "" {
		return st.X, st.Y, nil
	}
	env := c.Env()
	n := env.Doc.Ref(strings.TrimPrefix(st.Target, "#"))
	if n == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoTarget, st.Target)
	}
	return n.Box.X + n.Box.Width/2, n.Box.Y + n.Box.Height/2 - env.Win.ScrollY(), nil
}
