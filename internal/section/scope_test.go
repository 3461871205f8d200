package section

import (
	"testing"

	"github.com/san-kum/stride/internal/timeline"
)

type countCancel struct{ n *int }

func (c countCancel) Cancel() { *c.n++ }

func TestScopeCloseReverseOrderAndIdempotent(t *testing.T) {
	s := NewScope("test")
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		s.Defer(func() { order = append(order, i) })
	}
	n := 0
	s.Add(countCancel{&n})

	s.Close()
	s.Close()
	if n != 1 {
		t.Errorf("expected one cancel, got %d", n)
	}
	if len(order) != 3 || order[0] != 2 || order[2] != 0 {
		t.Errorf("expected reverse order, got %v", order)
	}
	if !s.Closed() || s.Len() != 0 {
		t.Error("scope should be closed and empty")
	}

	ran := false
	s.Defer(func() { ran = true })
	if !ran {
		t.Error("defer on a closed scope should run immediately")
	}
}

func TestScopeIgnoresNil(t *testing.T) {
	s := NewScope("test")
	s.Add(nil)
	s.Track(nil)
	var tl *timeline.Timeline
	s.Add(tl)
	s.Close()

	var nilScope *Scope
	nilScope.Close()
	if !nilScope.Closed() {
		t.Error("nil scope reports closed")
	}
}
