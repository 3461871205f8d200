package section

import (
	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/ease"
	"github.com/san-kum/stride/internal/frame"
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/timeline"
)

// HoverPart is one node a hover animates, with the values it moves to on
// pointer enter (Emphasis) and back to on leave (Rest).
type HoverPart struct {
	Node     *dom.Node
	Emphasis motion.Props
	Rest     motion.Props
	Duration float64
	Ease     ease.Func
}

// Transition is a target property set a hover wants a node to reach.
type Transition struct {
	Node     *dom.Node
	To       motion.Props
	Duration float64
	Ease     ease.Func
}

// Hover maps pointer enter and leave on a zone to transitions of its parts.
type Hover struct {
	Name string
	Zone *dom.Node
	// Href is the in-page target a click on the zone navigates to.
	Href string

	loop      *frame.Loop
	parts     []HoverPart
	hovered   bool
	tweens    []*timeline.Timeline
	cancelled bool
}

// NewHover drops parts whose node is missing. It returns nil when the zone
// itself is missing.
func NewHover(loop *frame.Loop, name string, zone *dom.Node, parts ...HoverPart) *Hover {
	if zone == nil {
		return nil
	}
	h := &Hover{Name: name, Zone: zone, Href: zone.Href, loop: loop}
	for _, p := range parts {
		if p.Node == nil {
			continue
		}
		if p.Ease == nil {
			p.Ease = power2Out
		}
		h.parts = append(h.parts, p)
	}
	return h
}

// OnPointerEnter returns the emphasis transitions without applying them.
func (h *Hover) OnPointerEnter() []Transition {
	return h.transitions(func(p HoverPart) motion.Props { return p.Emphasis })
}

// OnPointerLeave returns the transitions back to rest.
func (h *Hover) OnPointerLeave() []Transition {
	return h.transitions(func(p HoverPart) motion.Props { return p.Rest })
}

func (h *Hover) transitions(pick func(HoverPart) motion.Props) []Transition {
	if h == nil {
		return nil
	}
	out := make([]Transition, 0, len(h.parts))
	for _, p := range h.parts {
		out = append(out, Transition{Node: p.Node, To: pick(p), Duration: p.Duration, Ease: p.Ease})
	}
	return out
}

// Enter starts the emphasis tweens. It reports false when the zone is
// already hovered or the hover was cancelled.
func (h *Hover) Enter() bool {
	if h == nil || h.cancelled || h.hovered {
		return false
	}
	h.hovered = true
	h.apply(h.OnPointerEnter())
	return true
}

func (h *Hover) Leave() bool {
	if h == nil || h.cancelled || !h.hovered {
		return false
	}
	h.hovered = false
	h.apply(h.OnPointerLeave())
	return true
}

func (h *Hover) apply(ts []Transition) {
	h.stop()
	for _, t := range ts {
		tl, err := timeline.To(h.loop, t.Node, t.To, t.Duration, t.Ease)
		if err != nil || tl == nil {
			continue
		}
		h.tweens = append(h.tweens, tl)
	}
}

func (h *Hover) stop() {
	for _, tl := range h.tweens {
		tl.Cancel()
	}
	h.tweens = h.tweens[:0]
}

func (h *Hover) Hovered() bool { return h != nil && h.hovered }

// Contains reports whether a document point lies in the zone's layout box.
func (h *Hover) Contains(x, y float64) bool {
	return h != nil && h.Zone.Mounted() && h.Zone.Box.Contains(x, y)
}

// Cancel stops in-flight tweens and ignores further pointer events.
func (h *Hover) Cancel() {
	if h == nil || h.cancelled {
		return
	}
	h.cancelled = true
	h.hovered = false
	h.stop()
}

var _ motion.Canceller = (*Hover)(nil)
