package trigger

import (
	"errors"
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/stride/internal/dom"
)

type fixture struct {
	doc *dom.Document
	win *dom.Window
	el  *dom.Node
}

// A 5000px page viewed through a 1000px window with one element at 2000.
func newFixture() fixture {
	root := dom.NewNode("page", dom.KindPage, dom.Box{Width: 1000, Height: 5000})
	el := dom.NewNode("card", dom.KindCard, dom.Box{Y: 2000, Width: 400, Height: 500})
	root.Append(el)
	doc := dom.NewDocument(root)
	return fixture{doc: doc, win: dom.NewWindow(doc, 1000, 1000), el: el}
}

func TestReverseEnterAndLeaveBack(t *testing.T) {
	f := newFixture()
	reg := NewRegistry(f.win)
	var enters, leaves int
	_, err := reg.Register(Spec{
		Element:   f.el,
		Start:     Top(0.8),
		Policy:    Reverse,
		Callbacks: Callbacks{OnEnter: func() { enters++ }, OnLeaveBack: func() { leaves++ }},
	})
	if err != nil {
		t.Fatal(err)
	}

	f.win.ScrollTo(1199)
	if enters != 0 {
		t.Fatalf("entered before the start line")
	}
	f.win.ScrollTo(1201)
	f.win.ScrollTo(1500)
	if enters != 1 {
		t.Fatalf("expected 1 enter, got %d", enters)
	}
	f.win.ScrollTo(1100)
	f.win.ScrollTo(900)
	if leaves != 1 {
		t.Fatalf("expected 1 leave-back, got %d", leaves)
	}
	f.win.ScrollTo(1300)
	if enters != 2 {
		t.Errorf("expected re-entry, got %d enters", enters)
	}
}

func TestOneShotFiresOnceUntilReset(t *testing.T) {
	f := newFixture()
	reg := NewRegistry(f.win)
	n := 0
	h, _ := reg.Register(Spec{Element: f.el, Start: Top(0.8), Policy: OneShot,
		Callbacks: Callbacks{OnEnter: func() { n++ }}})

	for _, y := range []float64{1300, 500, 1300, 2000} {
		f.win.ScrollTo(y)
	}
	if n != 1 {
		t.Fatalf("expected one enter, got %d", n)
	}
	h.Reset()
	if n != 2 {
		t.Errorf("reset at a past-start position should fire again, got %d", n)
	}
}

func TestRegisterEvaluatesCurrentPosition(t *testing.T) {
	f := newFixture()
	f.win.ScrollTo(3000)
	reg := NewRegistry(f.win)
	entered := false
	reg.Register(Spec{Element: f.el, Start: Top(0.8), Policy: Reverse,
		Callbacks: Callbacks{OnEnter: func() { entered = true }}})
	if !entered {
		t.Error("trigger already past its start should enter on register")
	}
}

func TestScrubProgressMonotonicAndClamped(t *testing.T) {
	g := gomega.NewWithT(t)
	f := newFixture()
	reg := NewRegistry(f.win)
	end := Bottom(0)
	var got []float64
	h, err := reg.Register(Spec{Element: f.el, Start: Top(1), End: &end, Policy: Scrub,
		Callbacks: Callbacks{OnProgress: func(p float64) { got = append(got, p) }}})
	g.Expect(err).NotTo(gomega.HaveOccurred())

	start, stop := h.Range()
	g.Expect(start).To(gomega.Equal(1000.0))
	g.Expect(stop).To(gomega.Equal(2500.0))

	for y := 0.0; y <= 4000; y += 100 {
		f.win.ScrollTo(y)
	}
	g.Expect(got).NotTo(gomega.BeEmpty())
	for i, p := range got {
		g.Expect(p).To(gomega.BeNumerically(">=", 0))
		g.Expect(p).To(gomega.BeNumerically("<=", 1))
		if i > 0 {
			g.Expect(p).To(gomega.BeNumerically(">", got[i-1]))
		}
	}
	g.Expect(got[len(got)-1]).To(gomega.Equal(1.0))
	g.Expect(h.Progress()).To(gomega.Equal(1.0))

	f.win.ScrollTo(1750)
	g.Expect(h.Progress()).To(gomega.BeNumerically("~", 0.5, 1e-9))
}

func TestScrubLeavingReportsEndpointOnce(t *testing.T) {
	f := newFixture()
	reg := NewRegistry(f.win)
	end := Bottom(0)
	var got []float64
	reg.Register(Spec{Element: f.el, Start: Top(1), End: &end, Policy: Scrub,
		Callbacks: Callbacks{OnProgress: func(p float64) { got = append(got, p) }}})

	f.win.ScrollTo(2000)
	f.win.ScrollTo(3000)
	f.win.ScrollTo(3500)
	f.win.ScrollTo(4000)
	want := []float64{0, 2.0 / 3, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestScrubRequiresEnd(t *testing.T) {
	f := newFixture()
	reg := NewRegistry(f.win)
	_, err := reg.Register(Spec{Element: f.el, Start: Top(1), Policy: Scrub})
	if !errors.Is(err, ErrMissingEnd) {
		t.Errorf("expected ErrMissingEnd, got %v", err)
	}
	if reg.Listening() {
		t.Error("failed registration must not attach the listener")
	}
}

func TestUnknownPolicy(t *testing.T) {
	f := newFixture()
	_, err := NewRegistry(f.win).Register(Spec{Element: f.el, Policy: Policy(9)})
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("expected ErrUnknownPolicy, got %v", err)
	}
	if _, err := ParsePolicy("sideways"); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestNilElementYieldsNilHandle(t *testing.T) {
	f := newFixture()
	reg := NewRegistry(f.win)
	var missing *dom.Node
	h, err := reg.Register(Spec{Element: missing, Start: Top(0.8)})
	if h != nil || err != nil {
		t.Fatalf("expected nil handle and nil error, got %v %v", h, err)
	}
	h.Unregister()
	if reg.Count() != 0 || f.win.Listeners() != 0 {
		t.Error("nil element must not register")
	}
}

func TestSharedListenerRefCounted(t *testing.T) {
	f := newFixture()
	reg := NewRegistry(f.win)
	var handles []*Handle
	for i := 0; i < 5; i++ {
		h, _ := reg.Register(Spec{Element: f.el, Start: Top(0.8), Policy: Reverse})
		handles = append(handles, h)
	}
	if f.win.Listeners() != 1 {
		t.Fatalf("expected one shared listener, got %d", f.win.Listeners())
	}
	for i, h := range handles {
		h.Unregister()
		h.Unregister()
		wantListening := i < len(handles)-1
		if reg.Listening() != wantListening {
			t.Errorf("after %d unregistrations listening=%v", i+1, reg.Listening())
		}
	}
	if f.win.Listeners() != 0 {
		t.Errorf("listener leaked: %d attached", f.win.Listeners())
	}

	reg.Register(Spec{Element: f.el, Start: Top(0.8), Policy: Reverse})
	if f.win.Listeners() != 1 {
		t.Error("listener must reattach for a new registration")
	}
}

func TestUnregisterDuringCallback(t *testing.T) {
	f := newFixture()
	reg := NewRegistry(f.win)
	var self *Handle
	other := 0
	self, _ = reg.Register(Spec{Element: f.el, Start: Top(0.8), Policy: Reverse,
		Callbacks: Callbacks{OnEnter: func() { self.Unregister() }}})
	reg.Register(Spec{Element: f.el, Start: Top(0.8), Policy: Reverse,
		Callbacks: Callbacks{OnEnter: func() { other++ }}})

	f.win.ScrollTo(1500)
	if other != 1 {
		t.Errorf("sibling trigger should still fire, got %d", other)
	}
	if reg.Count() != 1 {
		t.Errorf("expected 1 remaining trigger, got %d", reg.Count())
	}
}

func TestResizeRecomputes(t *testing.T) {
	f := newFixture()
	reg := NewRegistry(f.win)
	entered := 0
	h, _ := reg.Register(Spec{Element: f.el, Start: Top(0.8), Policy: Reverse,
		Callbacks: Callbacks{OnEnter: func() { entered++ }}})
	f.win.ScrollTo(1100)
	if entered != 0 {
		t.Fatal("entered too early")
	}
	f.win.Resize(1000, 1200)
	start, _ := h.Range()
	if start != 2000-0.8*1200 {
		t.Errorf("start not recomputed: %v", start)
	}
	if entered != 1 {
		t.Errorf("a taller viewport puts the element past its line, got %d enters", entered)
	}
}

func TestObserver(t *testing.T) {
	f := newFixture()
	var events []Event
	reg := NewRegistry(f.win, WithObserver(func(e Event) { events = append(events, e) }))
	reg.Register(Spec{Name: "card", Element: f.el, Start: Top(0.8), Policy: Reverse})
	f.win.ScrollTo(1500)
	f.win.ScrollTo(0)
	if len(events) != 2 || events[0].Kind != EventEnter || events[1].Kind != EventLeaveBack {
		t.Fatalf("unexpected events %+v", events)
	}
	if events[0].Name != "card" || events[0].ScrollY != 1500 {
		t.Errorf("unexpected event payload %+v", events[0])
	}
}
