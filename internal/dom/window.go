package dom

import "math"

// Listener receives scroll and resize notifications from the window.
type Listener interface {
	OnScroll(scrollY float64)
	OnResize(width, height float64)
}

// Window is the viewport scrolling over a document. It is the only host of
// scroll/resize listeners on the page.
type Window struct {
	doc       *Document
	width     float64
	height    float64
	scrollY   float64
	listeners []*listenerSlot
}

type listenerSlot struct {
	l      Listener
	active bool
}

func NewWindow(doc *Document, width, height float64) *Window {
	return &Window{doc: doc, width: width, height: height}
}

func (w *Window) Width() float64   { return w.width }
func (w *Window) Height() float64  { return w.height }
func (w *Window) ScrollY() float64 { return w.scrollY }

// MaxScroll is the furthest the viewport can travel down the document.
func (w *Window) MaxScroll() float64 {
	return math.Max(0, w.doc.Height()-w.height)
}

// Listen attaches l and returns its detach function. Detach is idempotent.
func (w *Window) Listen(l Listener) func() {
	slot := &listenerSlot{l: l, active: true}
	w.listeners = append(w.listeners, slot)
	return func() {
		if !slot.active {
			return
		}
		slot.active = false
		live := w.listeners[:0]
		for _, s := range w.listeners {
			if s.active {
				live = append(live, s)
			}
		}
		w.listeners = live
	}
}

// Listeners counts attached listeners.
func (w *Window) Listeners() int { return len(w.listeners) }

// ScrollTo moves the viewport, clamped to the document, and notifies
// listeners when the position changed.
func (w *Window) ScrollTo(y float64) {
	y = math.Max(0, math.Min(y, w.MaxScroll()))
	if y == w.scrollY {
		return
	}
	w.scrollY = y
	for _, s := range w.snapshot() {
		if s.active {
			s.l.OnScroll(y)
		}
	}
}

func (w *Window) ScrollBy(dy float64) { w.ScrollTo(w.scrollY + dy) }

func (w *Window) Resize(width, height float64) {
	w.width, w.height = width, height
	w.scrollY = math.Max(0, math.Min(w.scrollY, w.MaxScroll()))
	for _, s := range w.snapshot() {
		if s.active {
			s.l.OnResize(width, height)
		}
	}
}

func (w *Window) snapshot() []*listenerSlot {
	out := make([]*listenerSlot, len(w.listeners))
	copy(out, w.listeners)
	return out
}

// Visible reports whether a layout box overlaps the viewport.
func (w *Window) Visible(b Box) bool {
	return b.Bottom() > w.scrollY && b.Y < w.scrollY+w.height
}
