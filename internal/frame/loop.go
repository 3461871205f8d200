// Package frame provides the cooperative per-frame scheduler that drives
// every time-based animation on the page.
//
// There is no parallelism: the host (TUI tick, GUI frame, headless runner)
// calls Advance once per repaint and every subscribed callback runs to
// completion before the next one. Loop is not safe for concurrent use.
package frame

// Callback receives the elapsed time of the frame in seconds.
type Callback func(dt float64)

type Loop struct {
	subs   []*Subscription
	now    float64
	frames int
}

type Subscription struct {
	loop   *Loop
	cb     Callback
	active bool
}

func NewLoop() *Loop {
	return &Loop{subs: make([]*Subscription, 0, 32)}
}

// Subscribe registers cb to run on every subsequent Advance, in
// subscription order. Callbacks added during dispatch first run on the
// following frame.
func (l *Loop) Subscribe(cb Callback) *Subscription {
	s := &Subscription{loop: l, cb: cb, active: true}
	l.subs = append(l.subs, s)
	return s
}

// Cancel stops further callbacks. Safe to call more than once and on nil.
func (s *Subscription) Cancel() {
	if s == nil || !s.active {
		return
	}
	s.active = false
}

func (s *Subscription) Active() bool {
	return s != nil && s.active
}

// Advance runs one frame.
func (l *Loop) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	l.now += dt
	l.frames++

	n := len(l.subs)
	for i := 0; i < n; i++ {
		s := l.subs[i]
		if s.active {
			s.cb(dt)
		}
	}
	l.compact()
}

func (l *Loop) compact() {
	live := l.subs[:0]
	for _, s := range l.subs {
		if s.active {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(l.subs); i++ {
		l.subs[i] = nil
	}
	l.subs = live
}

// Now returns the accumulated loop time in seconds.
func (l *Loop) Now() float64 { return l.now }

func (l *Loop) Frames() int { return l.frames }

// Active counts subscriptions that will run on the next frame.
func (l *Loop) Active() int {
	n := 0
	for _, s := range l.subs {
		if s.active {
			n++
		}
	}
	return n
}
