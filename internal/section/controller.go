package section

import (
	"fmt"

	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/ease"
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/timeline"
	"github.com/san-kum/stride/internal/trigger"
)

// Curves used across the page.
var (
	power2Out   = ease.MustParse("power2.out")
	power3Out   = ease.MustParse("power3.out")
	power2InOut = ease.MustParse("power2.inOut")
	backOut     = ease.MustParse("back.out(1.7)")
	elasticOut  = ease.MustParse("elastic.out(1, 0.5)")
	sineInOut   = ease.MustParse("sine.inOut")
	linear      = ease.Linear
)

// Controller owns the animations of one page section.
type Controller interface {
	Name() string
	// Mount captures references and starts the section's animations.
	// Mounting a mounted controller does nothing.
	Mount(env *Env)
	// Unmount releases every timeline, trigger and task. It is idempotent.
	Unmount()
	Mounted() bool
	Hovers() []*Hover
	Timelines() []Inspection
}

// Inspection describes a timeline a controller built, for tooling.
type Inspection struct {
	Section string
	Label   string
	Kind    string
	Trigger string
	Steps   []timeline.StepInfo
}

type base struct {
	name   string
	env    *Env
	scope  *Scope
	hovers []*Hover
	plans  []Inspection
}

func (b *base) Name() string { return b.name }

func (b *base) Mounted() bool { return b.scope != nil && !b.scope.Closed() }

func (b *base) begin(env *Env) bool {
	if env == nil || b.Mounted() {
		return false
	}
	b.env = env
	b.scope = NewScope(b.name)
	b.hovers = nil
	b.plans = nil
	return true
}

func (b *base) Unmount() {
	b.scope.Close()
	b.hovers = nil
}

func (b *base) Hovers() []*Hover { return b.hovers }

func (b *base) Timelines() []Inspection { return b.plans }

func (b *base) ref(id string) *dom.Node { return b.env.Ref(b.name, id) }

// set writes values immediately, like a zero-length tween.
func set(n *dom.Node, props motion.Props) {
	for k, v := range props {
		n.SetProp(k, v)
	}
}

// fromTo animates from the given values to the resting value of every
// property named.
func fromTo(n *dom.Node, from motion.Props, dur, delay float64, curve ease.Func) timeline.Step {
	to := make(motion.Props, len(from))
	for k := range from {
		to[k] = k.Rest()
	}
	return between(n, from, to, dur, delay, curve)
}

func between(n *dom.Node, from, to motion.Props, dur, delay float64, curve ease.Func) timeline.Step {
	s := timeline.Step{Target: n, From: from, To: to, Duration: dur, Delay: delay, Ease: curve}
	if n != nil {
		s.Label = n.ID
	}
	return s
}

func (b *base) label(name string) string { return b.name + "/" + name }

func (b *base) build(name string, steps []timeline.Step, opts ...timeline.Option) *timeline.Timeline {
	opts = append(opts, timeline.WithLabel(b.label(name)))
	tl, err := timeline.Build(b.env.Loop, steps, opts...)
	if err != nil {
		b.env.Log.Warn("timeline rejected", "section", b.name, "timeline", name, "err", err)
		return nil
	}
	if len(tl.Steps()) == 0 {
		return nil
	}
	b.scope.Add(tl)
	return tl
}

func (b *base) record(name, kind, trig string, steps []timeline.StepInfo) {
	b.plans = append(b.plans, Inspection{Section: b.name, Label: name, Kind: kind, Trigger: trig, Steps: steps})
}

// intro plays a timeline as soon as the section mounts.
func (b *base) intro(name string, steps []timeline.Step) *timeline.Timeline {
	tl := b.build(name, steps)
	if tl == nil {
		return nil
	}
	b.record(name, "timeline", "mount", tl.Steps())
	tl.Play()
	return tl
}

// reveal plays a timeline when el's top crosses the start line scrolling
// down and reverses it crossing back up.
func (b *base) reveal(name string, el *dom.Node, start trigger.Anchor, steps []timeline.Step) *timeline.Timeline {
	if el == nil {
		return nil
	}
	tl := b.build(name, steps)
	if tl == nil {
		return nil
	}
	h, err := b.env.Triggers.Register(trigger.Spec{
		Name:    b.label(name),
		Element: el,
		Start:   start,
		Policy:  trigger.Reverse,
		Callbacks: trigger.Callbacks{
			OnEnter:     tl.Play,
			OnLeaveBack: tl.Reverse,
		},
	})
	if err != nil {
		b.env.Log.Warn("trigger rejected", "section", b.name, "trigger", name, "err", err)
		tl.Cancel()
		return nil
	}
	tl.Bind(h.Unregister)
	b.scope.Track(h)
	b.record(name, "timeline", fmt.Sprintf("%s %s %s", el.ID, start, trigger.Reverse), tl.Steps())
	return tl
}

// parallax maps scroll progress between start and end over el onto steps.
func (b *base) parallax(name string, el *dom.Node, start, end trigger.Anchor, steps []timeline.Step) *timeline.Scrub {
	if el == nil {
		return nil
	}
	s, err := timeline.BuildScrub(steps)
	if err != nil {
		b.env.Log.Warn("scrub rejected", "section", b.name, "scrub", name, "err", err)
		return nil
	}
	if len(s.Steps()) == 0 {
		return nil
	}
	b.scope.Add(s)
	h, err := b.env.Triggers.Register(trigger.Spec{
		Name:      b.label(name),
		Element:   el,
		Start:     start,
		End:       &end,
		Policy:    trigger.Scrub,
		Callbacks: trigger.Callbacks{OnProgress: s.SetProgress},
	})
	if err != nil {
		b.env.Log.Warn("trigger rejected", "section", b.name, "trigger", name, "err", err)
		s.Cancel()
		return nil
	}
	s.Bind(h.Unregister)
	b.scope.Track(h)
	b.record(name, "scrub", fmt.Sprintf("%s %s -> %s", el.ID, start, end), s.Steps())
	return s
}

// float starts an endless yoyo of n around its current values.
func (b *base) float(name string, n *dom.Node, amplitude motion.Props, period, delay float64) *timeline.Yoyo {
	y := timeline.StartYoyo(b.env.Loop, n, amplitude, period, delay, sineInOut)
	if y == nil {
		return nil
	}
	b.scope.Add(y)
	b.record(name, "yoyo", fmt.Sprintf("period %.2fs", period), []timeline.StepInfo{{
		Label: n.ID, Props: amplitude.Keys(), Delay: delay, Duration: period,
	}})
	return y
}

func (b *base) hover(name string, zone *dom.Node, parts ...HoverPart) *Hover {
	h := NewHover(b.env.Loop, b.label(name), zone, parts...)
	if h == nil {
		return nil
	}
	b.scope.Add(h)
	b.hovers = append(b.hovers, h)
	return h
}

// decompose splits a title into character nodes for the scope's lifetime.
func (b *base) decompose(n *dom.Node, base, stagger float64) ([]CharCell, []*dom.Node) {
	if n == nil {
		return nil, nil
	}
	cells := SplitChars(n.Text, base, stagger)
	nodes, restore := Decompose(b.env.Doc, n, cells)
	b.scope.Defer(restore)
	return cells, nodes
}

// scale is the single-property hover used by links and buttons.
func scale(n *dom.Node, to, dur float64) HoverPart {
	return HoverPart{
		Node:     n,
		Emphasis: motion.Props{motion.Scale: to},
		Rest:     motion.Props{motion.Scale: 1},
		Duration: dur,
		Ease:     power2Out,
	}
}
