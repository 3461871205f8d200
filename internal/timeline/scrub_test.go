package timeline

import (
	"testing"

	"github.com/san-kum/stride/internal/motion"

	. "github.com/onsi/gomega"
)

func TestScrubIsPureFunctionOfProgress(t *testing.T) {
	g := NewWithT(t)
	el := newFake()
	s, err := BuildScrub([]Step{{Target: el, From: motion.Props{motion.Y: 0}, To: motion.Props{motion.Y: -50}}})
	g.Expect(err).NotTo(HaveOccurred())

	s.SetProgress(0.5)
	g.Expect(el.props[motion.Y]).To(BeNumerically("~", -25, 1e-12))
	s.SetProgress(0.9)
	s.SetProgress(0.5)
	g.Expect(el.props[motion.Y]).To(BeNumerically("~", -25, 1e-12))
}

func TestScrubClampsProgress(t *testing.T) {
	el := newFake()
	s, _ := BuildScrub([]Step{{Target: el, From: motion.Props{motion.Y: 0}, To: motion.Props{motion.Y: 100}}})

	s.SetProgress(1.7)
	if el.props[motion.Y] != 100 || s.Progress() != 1 {
		t.Errorf("expected clamp to 1, got y=%v progress=%v", el.props[motion.Y], s.Progress())
	}
	s.SetProgress(-3)
	if el.props[motion.Y] != 0 || s.Progress() != 0 {
		t.Errorf("expected clamp to 0, got y=%v progress=%v", el.props[motion.Y], s.Progress())
	}
}

func TestScrubWithPlacedSteps(t *testing.T) {
	el := newFake()
	s, _ := BuildScrub([]Step{
		{Target: el, From: motion.Props{motion.X: 0}, To: motion.Props{motion.X: 10}, Duration: 1},
		{Target: el, From: motion.Props{motion.Opacity: 1}, To: motion.Props{motion.Opacity: 0}, Duration: 1, Delay: 1},
	})
	s.SetProgress(0.5)
	if el.props[motion.X] != 10 {
		t.Errorf("expected first half to finish x, got %v", el.props[motion.X])
	}
	if el.props[motion.Opacity] != 1 {
		t.Errorf("expected second step untouched at its start, got %v", el.props[motion.Opacity])
	}
}

func TestScrubCancel(t *testing.T) {
	el := newFake()
	s, _ := BuildScrub([]Step{{Target: el, From: motion.Props{motion.Y: 0}, To: motion.Props{motion.Y: 100}}})
	detached := false
	s.Bind(func() { detached = true })
	s.Cancel()
	s.SetProgress(1)
	if el.writes != 0 {
		t.Errorf("cancelled scrub wrote %d times", el.writes)
	}
	if !detached {
		t.Error("expected bound trigger to detach")
	}
}
