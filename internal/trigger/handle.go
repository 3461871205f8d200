package trigger

import (
	"math"
	"reflect"
)

type Handle struct {
	reg  *Registry
	spec Spec

	startY, endY float64
	active       bool
	fired        bool
	progress     float64
	removed      bool
}

// Unregister stops the trigger. It is safe on a nil handle and idempotent.
func (h *Handle) Unregister() {
	if h == nil || h.removed {
		return
	}
	h.removed = true
	h.reg.remove(h)
}

// Reset re-arms a one-shot trigger and re-evaluates it.
func (h *Handle) Reset() {
	if !h.live() {
		return
	}
	h.fired = false
	h.active = false
	h.evaluate(h.reg.src.ScrollY())
}

func (h *Handle) Name() string {
	if h == nil {
		return ""
	}
	return h.spec.Name
}

func (h *Handle) Policy() Policy { return h.spec.Policy }

// Active reports whether the scroll position is past the start line as of
// the last evaluation.
func (h *Handle) Active() bool { return h != nil && h.active }

// Progress is the last reported scrub progress, or 0 before any report.
func (h *Handle) Progress() float64 {
	if h == nil || math.IsNaN(h.progress) {
		return 0
	}
	return h.progress
}

func (h *Handle) Registered() bool { return h.live() }

// Range returns the scroll positions of the start and end lines.
func (h *Handle) Range() (start, end float64) { return h.startY, h.endY }

func (h *Handle) live() bool { return h != nil && !h.removed }

func (h *Handle) recompute() {
	top, height := h.spec.Element.Bounds()
	vh := h.reg.src.Height()
	h.startY = h.spec.Start.ScrollPos(top, height, vh)
	h.endY = h.startY
	if h.spec.End != nil {
		h.endY = h.spec.End.ScrollPos(top, height, vh)
	}
}

func (h *Handle) evaluate(scrollY float64) {
	past := scrollY >= h.startY
	switch h.spec.Policy {
	case OneShot:
		if past && !h.fired {
			h.fired = true
			h.active = true
			h.call(h.spec.OnEnter, EventEnter, scrollY)
		}
	case Reverse:
		switch {
		case past && !h.active:
			h.active = true
			h.call(h.spec.OnEnter, EventEnter, scrollY)
		case !past && h.active:
			h.active = false
			h.call(h.spec.OnLeaveBack, EventLeaveBack, scrollY)
		}
	case Scrub:
		h.active = past
		p := scrubProgress(scrollY, h.startY, h.endY)
		if p == h.progress {
			return
		}
		h.progress = p
		if h.spec.OnProgress != nil {
			h.spec.OnProgress(p)
		}
		h.reg.emit(h, EventProgress, scrollY)
	}
}

func (h *Handle) call(fn func(), kind EventKind, scrollY float64) {
	if fn != nil {
		fn()
	}
	h.reg.emit(h, kind, scrollY)
}

func scrubProgress(scrollY, start, end float64) float64 {
	if end <= start {
		if scrollY >= start {
			return 1
		}
		return 0
	}
	return math.Max(0, math.Min(1, (scrollY-start)/(end-start)))
}

func isNil(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
