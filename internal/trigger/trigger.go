// Package trigger fires callbacks when elements cross viewport lines while
// the window scrolls. All triggers of a registry share one listener on the
// window, attached with the first registration and detached with the last.
package trigger

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/stride/internal/dom"
)

var (
	ErrMissingEnd     = errors.New("trigger: scrubbed trigger needs an end anchor")
	ErrUnknownPolicy  = errors.New("trigger: unknown policy")
	ErrInvalidElement = errors.New("trigger: element has no layout")
)

type Policy int

const (
	// OneShot fires OnEnter the first time the start line is crossed.
	OneShot Policy = iota
	// Reverse fires OnEnter crossing down and OnLeaveBack crossing up.
	Reverse
	// Scrub reports scroll progress between the start and end lines.
	Scrub
)

func (p Policy) String() string {
	switch p {
	case OneShot:
		return "once"
	case Reverse:
		return "reverse"
	case Scrub:
		return "scrub"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "once", "oneshot", "one-shot":
		return OneShot, nil
	case "reverse":
		return Reverse, nil
	case "scrub":
		return Scrub, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// Anchor pairs an element edge with a viewport line, given as a fraction
// of the viewport height from its top. Top(0.8) reads "element top meets
// 80% down the viewport".
type Anchor struct {
	Edge Edge
	Line float64
}

func Top(line float64) Anchor    { return Anchor{Edge: EdgeTop, Line: line} }
func Bottom(line float64) Anchor { return Anchor{Edge: EdgeBottom, Line: line} }

// ScrollPos is the window scroll position at which the anchor is met.
func (a Anchor) ScrollPos(top, height, viewport float64) float64 {
	edge := top
	if a.Edge == EdgeBottom {
		edge += height
	}
	return edge - a.Line*viewport
}

func (a Anchor) String() string {
	edge := "top"
	if a.Edge == EdgeBottom {
		edge = "bottom"
	}
	return fmt.Sprintf("%s %g%%", edge, a.Line*100)
}

// Element is anything with a layout rectangle. Transforms are ignored.
type Element interface {
	Bounds() (top, height float64)
	Mounted() bool
}

// Source is the window the registry listens to.
type Source interface {
	Listen(l dom.Listener) (detach func())
	ScrollY() float64
	Height() float64
}

type Callbacks struct {
	OnEnter     func()
	OnLeaveBack func()
	OnProgress  func(p float64)
}

type Spec struct {
	Name    string
	Element Element
	Start   Anchor
	End     *Anchor
	Policy  Policy
	Callbacks
}

type EventKind int

const (
	EventEnter EventKind = iota
	EventLeaveBack
	EventProgress
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventLeaveBack:
		return "leave-back"
	case EventProgress:
		return "progress"
	}
	return "unknown"
}

type Event struct {
	Name     string
	Kind     EventKind
	Progress float64
	ScrollY  float64
}

type Option func(*Registry)

// WithObserver reports every fired callback to fn, after the callback ran.
func WithObserver(fn func(Event)) Option {
	return func(r *Registry) { r.observer = fn }
}

type Registry struct {
	src      Source
	handles  []*Handle
	detach   func()
	observer func(Event)
}

func NewRegistry(src Source, opts ...Option) *Registry {
	r := &Registry{src: src}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register adds a trigger and evaluates it once against the current scroll
// position. A nil or unmounted element yields a nil handle and no error.
func (r *Registry) Register(spec Spec) (*Handle, error) {
	if isNil(spec.Element) || !spec.Element.Mounted() {
		return nil, nil
	}
	switch spec.Policy {
	case OneShot, Reverse:
	case Scrub:
		if spec.End == nil {
			return nil, ErrMissingEnd
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(spec.Policy))
	}

	h := &Handle{reg: r, spec: spec, progress: math.NaN()}
	h.recompute()
	r.handles = append(r.handles, h)
	if r.detach == nil {
		r.detach = r.src.Listen(r)
	}
	h.evaluate(r.src.ScrollY())
	return h, nil
}

func (r *Registry) remove(h *Handle) {
	for i, x := range r.handles {
		if x == h {
			r.handles = append(r.handles[:i], r.handles[i+1:]...)
			break
		}
	}
	if len(r.handles) == 0 && r.detach != nil {
		r.detach()
		r.detach = nil
	}
}

// Listening reports whether the shared listener is attached.
func (r *Registry) Listening() bool { return r.detach != nil }

func (r *Registry) Count() int { return len(r.handles) }

// Refresh recomputes every trigger's scroll positions from current layout
// and re-evaluates them.
func (r *Registry) Refresh() {
	live := r.snapshot()
	for _, h := range live {
		h.recompute()
	}
	y := r.src.ScrollY()
	for _, h := range live {
		if h.live() {
			h.evaluate(y)
		}
	}
}

func (r *Registry) OnScroll(scrollY float64) {
	for _, h := range r.snapshot() {
		if h.live() {
			h.evaluate(scrollY)
		}
	}
}

func (r *Registry) OnResize(width, height float64) { r.Refresh() }

func (r *Registry) snapshot() []*Handle {
	out := make([]*Handle, len(r.handles))
	copy(out, r.handles)
	return out
}

func (r *Registry) emit(h *Handle, kind EventKind, scrollY float64) {
	if r.observer == nil {
		return
	}
	r.observer(Event{Name: h.spec.Name, Kind: kind, Progress: h.progress, ScrollY: scrollY})
}

var _ dom.Listener = (*Registry)(nil)
