package section

import (
	"errors"
	"math"
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/site"
)

func TestHeroIntroCascade(t *testing.T) {
	g := gomega.NewWithT(t)
	env := newTestEnv()
	h := NewHero()
	h.Mount(env)

	g.Expect(h.Chars).To(gomega.HaveLen(10))
	first := env.Doc.Ref(charID(site.HeroTitle, 0))
	g.Expect(first).NotTo(gomega.BeNil())
	g.Expect(first.Prop(motion.Opacity)).To(gomega.Equal(0.0))
	g.Expect(first.Prop(motion.RotateX)).To(gomega.Equal(90.0))
	g.Expect(env.Doc.Ref(site.HeroVideo).Prop(motion.Scale)).To(gomega.Equal(1.1))
	g.Expect(h.Intro.Duration()).To(gomega.BeNumerically("~", 4.4, 1e-9))

	run(env, 1.2)
	last := env.Doc.Ref(charID(site.HeroTitle, 9))
	g.Expect(first.Prop(motion.Opacity)).To(gomega.BeNumerically(">", 0))
	g.Expect(last.Prop(motion.Opacity)).To(gomega.Equal(0.0))

	run(env, 3.5)
	for i := range h.Chars {
		c := env.Doc.Ref(charID(site.HeroTitle, i))
		g.Expect(c.Prop(motion.Opacity)).To(gomega.BeNumerically("~", 1, 1e-9))
		g.Expect(c.Prop(motion.Y)).To(gomega.BeNumerically("~", 0, 1e-9))
	}
	g.Expect(env.Doc.Ref(site.HeroCTA).Prop(motion.Scale)).To(gomega.BeNumerically("~", 1, 1e-9))
	g.Expect(env.Doc.Ref(site.HeroSubtitle).Prop(motion.Blur)).To(gomega.BeNumerically("~", 0, 1e-9))
	g.Expect(h.Intro.Playing()).To(gomega.BeFalse())
	g.Expect(h.Floats).To(gomega.HaveLen(4))
	for _, f := range h.Floats {
		g.Expect(f.Running()).To(gomega.BeTrue())
	}
}

func TestHeroParallaxScalesVideo(t *testing.T) {
	env := newTestEnv()
	NewHero().Mount(env)
	run(env, 5)
	video := env.Doc.Ref(site.HeroVideo)
	env.Win.ScrollTo(vh / 2)
	if got := video.Prop(motion.Scale); got < 1.049 || got > 1.051 {
		t.Errorf("expected scale near 1.05 half way through the hero, got %v", got)
	}
	env.Win.ScrollTo(vh * 3)
	if got := video.Prop(motion.Scale); math.Abs(got-1.1) > 1e-9 {
		t.Errorf("expected clamped scale 1.1 past the hero, got %v", got)
	}
}

func TestUnmountStopsEverything(t *testing.T) {
	env := newTestEnv()
	h := NewHero()
	h.Mount(env)
	run(env, 4)
	h.Hovers()[0].Enter()
	h.Unmount()

	if env.Win.Listeners() != 0 || env.Triggers.Count() != 0 {
		t.Errorf("listeners leaked: window=%d triggers=%d", env.Win.Listeners(), env.Triggers.Count())
	}
	before := env.Doc.Mutations()
	run(env, 10)
	env.Win.ScrollTo(500)
	if env.Doc.Mutations() != before {
		t.Errorf("%d writes after unmount", env.Doc.Mutations()-before)
	}
	if env.Loop.Active() != 0 {
		t.Errorf("%d frame callbacks still subscribed", env.Loop.Active())
	}
	for _, f := range h.Floats {
		if f.Running() {
			t.Error("particle float survived unmount")
		}
	}
	title := env.Doc.Ref(site.HeroTitle)
	if title.Hidden || env.Doc.Ref(charID(site.HeroTitle, 0)) != nil {
		t.Error("title decomposition must be undone")
	}
	h.Unmount()
}

func TestUnmountWithoutMount(t *testing.T) {
	for _, name := range NewRegistry().Names() {
		c, _ := NewRegistry().New(name)
		c.Unmount()
		c.Unmount()
		if c.Mounted() {
			t.Errorf("%s reports mounted", name)
		}
	}
}

func TestMountTwiceIsNoop(t *testing.T) {
	env := newTestEnv()
	p := NewProducts()
	p.Mount(env)
	n := env.Triggers.Count()
	p.Mount(env)
	if env.Triggers.Count() != n {
		t.Errorf("second mount registered %d more triggers", env.Triggers.Count()-n)
	}
	p.Unmount()
	p.Mount(env)
	if env.Triggers.Count() != n {
		t.Errorf("remount should register the same %d triggers, got %d", n, env.Triggers.Count())
	}
}

func TestMissingReferencesSkipped(t *testing.T) {
	g := gomega.NewWithT(t)
	env := newTestEnv()
	env.Doc.Ref(site.HeroSubtitle).Unmount()
	env.Doc.Ref(site.HeroParticle(2)).Unmount()
	env.Doc.Ref(site.ProductCard(1)).Unmount()

	h := NewHero()
	h.Mount(env)
	p := NewProducts()
	p.Mount(env)
	run(env, 5)

	g.Expect(h.Floats).To(gomega.HaveLen(3))
	g.Expect(env.Doc.Ref(site.HeroCTA).Prop(motion.Opacity)).To(gomega.BeNumerically("~", 1, 1e-9))
	g.Expect(p.Hovers()).To(gomega.HaveLen(3))
	h.Unmount()
	p.Unmount()
	g.Expect(env.Win.Listeners()).To(gomega.Equal(0))
}

func TestProductCardRevealAndReverse(t *testing.T) {
	g := gomega.NewWithT(t)
	env := newTestEnv()
	p := NewProducts()
	p.Mount(env)
	card := env.Doc.Ref(site.ProductCard(0))
	g.Expect(card.Prop(motion.Opacity)).To(gomega.Equal(0.0))
	g.Expect(card.Prop(motion.RotateY)).To(gomega.Equal(15.0))

	start := card.Box.Y - 0.85*vh
	env.Win.ScrollTo(start + 10)
	run(env, 2)
	g.Expect(card.Prop(motion.Opacity)).To(gomega.BeNumerically("~", 1, 1e-9))
	g.Expect(card.Prop(motion.Y)).To(gomega.BeNumerically("~", 0, 1e-9))

	env.Win.ScrollTo(start - 10)
	run(env, 2)
	g.Expect(card.Prop(motion.Opacity)).To(gomega.BeNumerically("~", 0, 1e-9))
	g.Expect(card.Prop(motion.Y)).To(gomega.BeNumerically("~", 100, 1e-9))
	g.Expect(card.Prop(motion.Scale)).To(gomega.BeNumerically("~", 0.8, 1e-9))
}

func TestAthleteStatsStagger(t *testing.T) {
	g := gomega.NewWithT(t)
	env := newTestEnv()
	a := NewAthletes()
	a.Mount(env)
	g.Expect(a.Chars).To(gomega.HaveLen(len("ATHLETES")))

	env.Win.ScrollTo(env.Doc.Ref(site.SectionAthletes).Box.Bottom())
	run(env, 2.05)
	first := env.Doc.Ref(site.AthleteStat(0)).Prop(motion.Opacity)
	last := env.Doc.Ref(site.AthleteStat(3)).Prop(motion.Opacity)
	g.Expect(first).To(gomega.BeNumerically(">", last))
	run(env, 3)
	for i := 0; i < 4; i++ {
		g.Expect(env.Doc.Ref(site.AthleteStatNumber(i)).Prop(motion.Scale)).To(gomega.BeNumerically("~", 1, 1e-9))
	}
}

func TestTechnologyHover(t *testing.T) {
	g := gomega.NewWithT(t)
	env := newTestEnv()
	tc := NewTechnology()
	tc.Mount(env)
	g.Expect(tc.Hovers()).To(gomega.HaveLen(4))
	g.Expect(tc.Floats).To(gomega.HaveLen(4))
	bg := env.Doc.Ref(site.TechCardBackground(0))
	g.Expect(bg.Prop(motion.Opacity)).To(gomega.Equal(0.1))

	tc.Hovers()[0].Enter()
	run(env, 0.7)
	g.Expect(env.Doc.Ref(site.TechIcon(0)).Prop(motion.Rotation)).To(gomega.BeNumerically("~", 360, 1e-9))
	g.Expect(bg.Prop(motion.Opacity)).To(gomega.BeNumerically("~", 1, 1e-9))
	g.Expect(env.Doc.Ref(site.TechContent(0)).Prop(motion.Y)).To(gomega.BeNumerically("~", -5, 1e-9))

	tc.Hovers()[0].Leave()
	run(env, 0.7)
	g.Expect(bg.Prop(motion.Opacity)).To(gomega.BeNumerically("~", 0.1, 1e-9))
	g.Expect(env.Doc.Ref(site.TechIcon(0)).Prop(motion.Rotation)).To(gomega.BeNumerically("~", 0, 1e-9))
}

func TestFooterLinksStaggered(t *testing.T) {
	env := newTestEnv()
	f := NewFooter()
	f.Mount(env)
	var links int
	for _, in := range f.Timelines() {
		if in.Label == "links" {
			links++
			for i := 1; i < len(in.Steps); i++ {
				if in.Steps[i].Delay <= in.Steps[i-1].Delay {
					t.Errorf("link delays not increasing: %+v", in.Steps)
				}
			}
		}
	}
	if links != 3 {
		t.Errorf("expected a timeline per link group, got %d", links)
	}
	if len(f.Hovers()) != 4 {
		t.Errorf("expected a hover per social icon, got %d", len(f.Hovers()))
	}
}

func TestNavbarIntro(t *testing.T) {
	env := newTestEnv()
	n := NewNavbar()
	n.Mount(env)
	if got := env.Doc.Ref(site.Nav).Prop(motion.Y); got != -100 {
		t.Errorf("nav should start above the viewport, y=%v", got)
	}
	run(env, 3)
	for i := 0; i < 4; i++ {
		if got := env.Doc.Ref(site.NavLink(i)).Prop(motion.Opacity); got < 0.999 {
			t.Errorf("link %d opacity %v", i, got)
		}
	}
	if len(n.Hovers()) != 6 {
		t.Errorf("expected 6 hovers, got %d", len(n.Hovers()))
	}
}

func TestLoadingSequence(t *testing.T) {
	g := gomega.NewWithT(t)
	env := newTestEnv()
	l := NewLoading()
	finished := 0
	l.OnFinished(func() { finished++ })
	l.Mount(env)

	run(env, 0.3)
	g.Expect(l.Indeterminate()).To(gomega.BeTrue())
	g.Expect(l.Progress()).To(gomega.Equal(0.0))

	run(env, 1.2)
	g.Expect(l.Indeterminate()).To(gomega.BeFalse())
	g.Expect(l.Progress()).To(gomega.BeNumerically(">", 0))
	g.Expect(finished).To(gomega.Equal(0))

	run(env, 1.7)
	g.Expect(finished).To(gomega.Equal(1))
	g.Expect(l.Progress()).To(gomega.BeNumerically("~", 1, 1e-9))
	g.Expect(env.Doc.Ref(site.LoadingLogo).Prop(motion.Scale)).To(gomega.BeNumerically("~", 1, 1e-9))

	done := 0
	l.Dismiss(func() { done++ })
	l.Dismiss(func() { done++ })
	run(env, 1.1)
	g.Expect(done).To(gomega.Equal(1))
	g.Expect(env.Doc.Ref(site.Loading).Prop(motion.Opacity)).To(gomega.Equal(0.0))
	run(env, 5)
	g.Expect(finished).To(gomega.Equal(1))
}

func TestLoadingWithoutElementsFinishesAtOnce(t *testing.T) {
	env := newTestEnv()
	env.Doc.Ref(site.Loading).Unmount()
	l := NewLoading()
	finished := 0
	l.OnFinished(func() { finished++ })
	l.Mount(env)
	if finished != 1 || !l.Finished() {
		t.Error("a loading screen with nothing to animate should finish immediately")
	}
	dismissed := false
	l.Dismiss(func() { dismissed = true })
	if !dismissed {
		t.Error("dismiss without an overlay should complete immediately")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	want := []string{"loading", "navbar", "hero", "products", "athletes", "technology", "footer"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if r.Sections()[0] != "navbar" {
		t.Error("sections exclude the loading screen")
	}
	if _, err := r.New("pricing"); !errors.Is(err, ErrUnknownController) {
		t.Errorf("expected ErrUnknownController, got %v", err)
	}
}

func TestLoadingTiming(t *testing.T) {
	env := newTestEnv()
	l := NewLoading()
	l.SetTiming(LoadingTiming{Progress: 1})
	if got := l.Timing(); got.Logo != 1 || got.Progress != 1 || got.Fade != 1 {
		t.Fatalf("expected zero fields to keep defaults, got %+v", got)
	}
	finished := 0
	l.OnFinished(func() { finished++ })
	l.Mount(env)
	run(env, 1.2)
	if finished != 0 {
		t.Error("finished before the logo entrance ended")
	}
	run(env, 0.5)
	if finished != 1 {
		t.Errorf("expected the shortened sequence to finish by 1.7s, got %d", finished)
	}
}

func TestLoadingBarWaitsForLogo(t *testing.T) {
	tests := []struct {
		name     string
		timing   LoadingTiming
		idleAt   float64
		finishBy float64
	}{
		{"long logo", LoadingTiming{Logo: 3}, 2.4, 5.7},
		{"short logo", LoadingTiming{Logo: 0.4, Progress: 1}, 0, 1.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			env := newTestEnv()
			l := NewLoading()
			l.SetTiming(tt.timing)
			finished := false
			l.OnFinished(func() { finished = true })
			l.Mount(env)

			if tt.idleAt > 0 {
				run(env, 1)
				g.Expect(l.Progress()).To(gomega.Equal(0.0))
				run(env, tt.idleAt-1)
				g.Expect(l.Progress()).To(gomega.Equal(0.0))
				g.Expect(l.Indeterminate()).To(gomega.BeTrue())
			} else {
				run(env, 0.1)
				g.Expect(l.Progress()).To(gomega.BeNumerically(">", 0))
			}
			run(env, tt.finishBy)
			g.Expect(finished).To(gomega.BeTrue())
			g.Expect(l.Progress()).To(gomega.Equal(1.0))
		})
	}
}
