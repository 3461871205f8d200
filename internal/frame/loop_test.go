package frame

import "testing"

func TestAdvanceOrder(t *testing.T) {
	l := NewLoop()
	var order []int
	l.Subscribe(func(float64) { order = append(order, 1) })
	l.Subscribe(func(float64) { order = append(order, 2) })
	l.Subscribe(func(float64) { order = append(order, 3) })

	l.Advance(0.016)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("expected subscription order, got %v", order)
	}
	if l.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", l.Frames())
	}
}

func TestCancelStopsCallbacks(t *testing.T) {
	l := NewLoop()
	calls := 0
	s := l.Subscribe(func(float64) { calls++ })

	l.Advance(0.1)
	s.Cancel()
	s.Cancel()
	l.Advance(0.1)

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if l.Active() != 0 {
		t.Errorf("expected no active subscriptions, got %d", l.Active())
	}
}

func TestCancelDuringDispatch(t *testing.T) {
	l := NewLoop()
	var second *Subscription
	secondCalls := 0
	l.Subscribe(func(float64) { second.Cancel() })
	second = l.Subscribe(func(float64) { secondCalls++ })

	l.Advance(0.1)

	if secondCalls != 0 {
		t.Errorf("cancelled subscription must not run in the same frame, ran %d times", secondCalls)
	}
}

func TestSubscribeDuringDispatchRunsNextFrame(t *testing.T) {
	l := NewLoop()
	lateCalls := 0
	added := false
	l.Subscribe(func(float64) {
		if !added {
			added = true
			l.Subscribe(func(float64) { lateCalls++ })
		}
	})

	l.Advance(0.1)
	if lateCalls != 0 {
		t.Errorf("expected late subscriber to wait a frame, ran %d", lateCalls)
	}
	l.Advance(0.1)
	if lateCalls != 1 {
		t.Errorf("expected late subscriber to run once, ran %d", lateCalls)
	}
}

func TestNowAccumulates(t *testing.T) {
	l := NewLoop()
	l.Advance(0.25)
	l.Advance(0.25)
	l.Advance(-1)
	if l.Now() != 0.5 {
		t.Errorf("expected 0.5, got %v", l.Now())
	}
}

func TestNilSubscriptionCancel(t *testing.T) {
	var s *Subscription
	s.Cancel()
	if s.Active() {
		t.Error("nil subscription must not be active")
	}
}
