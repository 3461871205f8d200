package section

import (
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/trigger"
)

// Scope owns what a controller creates while mounted. Close releases it
// all in reverse creation order and is safe to call more than once, even
// after a mount that stopped halfway.
type Scope struct {
	name    string
	release []func()
	closed  bool
}

func NewScope(name string) *Scope {
	return &Scope{name: name}
}

func (s *Scope) Name() string { return s.name }

// Add registers a timeline, scrub, yoyo or hover for cancellation.
func (s *Scope) Add(c motion.Canceller) {
	if c == nil {
		return
	}
	s.Defer(c.Cancel)
}

// Track registers a trigger handle for unregistration. Nil handles from
// missing elements are ignored.
func (s *Scope) Track(h *trigger.Handle) {
	if h == nil {
		return
	}
	s.Defer(h.Unregister)
}

// Defer runs fn on Close. Deferring on a closed scope runs fn at once.
func (s *Scope) Defer(fn func()) {
	if s.closed {
		fn()
		return
	}
	s.release = append(s.release, fn)
}

func (s *Scope) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	for i := len(s.release) - 1; i >= 0; i-- {
		s.release[i]()
	}
	s.release = nil
}

func (s *Scope) Closed() bool { return s == nil || s.closed }

// Len is the number of pending releases.
func (s *Scope) Len() int { return len(s.release) }
