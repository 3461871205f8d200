package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/stride/internal/page"
	"github.com/san-kum/stride/internal/sim"
)

const dt = 1.0 / 60

var desktop = sim.Setup{Width: 1440, Height: 900, Seed: 1}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown action", "duration: 1\nsteps:\n  - action: jump\n", ErrUnknownAction},
		{"no duration", "steps: []\n", ErrInvalidStep},
		{"negative at", "duration: 1\nsteps:\n  - at: -1\n    action: scroll\n", ErrInvalidStep},
		{"navigate without target", "duration: 1\nsteps:\n  - action: navigate\n", ErrInvalidStep},
		{"resize without size", "duration: 1\nsteps:\n  - action: resize\n", ErrInvalidStep},
		{"repeat without interval", "duration: 1\nsteps:\n  - action: scroll_by\n    repeat: 3\n", ErrInvalidStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := ParseScenario([]byte("duration: [")); err == nil {
		t.Error("expected yaml error")
	}
	if _, err := ParseScenario([]byte("duration: 1\ntrack: [hero.colour]\n")); err == nil {
		t.Error("expected bad probe error")
	}
}

func TestCuesExpandRepeats(t *testing.T) {
	g := gomega.NewWithT(t)
	sc := &Scenario{Duration: 5, Steps: []Step{
		{At: 1, Action: ActionScrollBy, By: 100, Repeat: 3, Every: 0.5},
		{At: 0.2, Action: ActionNavigate, Target: "products"},
	}}
	cues := sc.Cues()
	g.Expect(cues).To(gomega.HaveLen(4))
	g.Expect(cues[0].Label).To(gomega.Equal("scroll_by +100"))
	g.Expect(cues[2].At).To(gomega.BeNumerically("~", 2, 1e-9))
	g.Expect(cues[3].Label).To(gomega.Equal("navigate products"))

	cfg := sc.Config(dt)
	g.Expect(cfg.Duration).To(gomega.Equal(Lead + 5))
}

func TestBuiltins(t *testing.T) {
	names := Builtins()
	want := []string{"bounce", "hover-tour", "navigate", "scroll-through"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("expected %s at %d, got %s", n, i, names[i])
		}
		sc, err := Builtin(n)
		if err != nil {
			t.Fatalf("builtin %s: %v", n, err)
		}
		if sc.Name != n {
			t.Errorf("expected name %s, got %s", n, sc.Name)
		}
	}
	if _, err := Builtin("nope"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	if err := os.WriteFile(path, []byte("name: mine\nduration: 2\nsteps:\n  - action: scroll\n    to: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "mine" || len(sc.Steps) != 1 {
		t.Errorf("unexpected scenario %+v", sc)
	}
}

func TestRunBounce(t *testing.T) {
	g := gomega.NewWithT(t)
	sc, err := Builtin("bounce")
	g.Expect(err).NotTo(gomega.HaveOccurred())

	res, err := RunScenario(context.Background(), sc, desktop, dt)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(res.Errors).To(gomega.BeEmpty())
	g.Expect(res.States[len(res.States)-1]).To(gomega.Equal(page.Ready))
	g.Expect(res.Scroll[len(res.Scroll)-1]).To(gomega.BeNumerically("~", 2200, 1e-9))

	var enters, leaves int
	for _, e := range res.Events {
		switch e.Kind.String() {
		case "enter":
			enters++
		case "leave-back":
			leaves++
		}
	}
	g.Expect(leaves).To(gomega.BeNumerically(">", 0))
	g.Expect(enters).To(gomega.BeNumerically(">", leaves))
}

func TestRunHoverTour(t *testing.T) {
	g := gomega.NewWithT(t)
	sc, err := Builtin("hover-tour")
	g.Expect(err).NotTo(gomega.HaveOccurred())

	res, err := RunScenario(context.Background(), sc, desktop, dt)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(res.Errors).To(gomega.BeEmpty())

	peak := 0.0
	for _, v := range res.Tracks["product-card-0-image.scale"] {
		if v > peak {
			peak = v
		}
	}
	g.Expect(peak).To(gomega.BeNumerically(">", 1.05))
}

func TestRunMissingTarget(t *testing.T) {
	sc := &Scenario{Name: "t", Duration: 1, Steps: []Step{{At: 0, Action: ActionHover, Target: "ghost"}}}
	res, err := RunScenario(context.Background(), sc, desktop, dt)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Errors) != 1 || !errors.Is(res.Errors[0], ErrNoTarget) {
		t.Errorf("expected ErrNoTarget, got %v", res.Errors)
	}
}

func TestRandomWalkDeterministic(t *testing.T) {
	a := RandomWalk(WalkConfig{Steps: 10, Interval: 0.3, MaxStep: 400, Seed: 9})
	b := RandomWalk(WalkConfig{Steps: 10, Interval: 0.3, MaxStep: 400, Seed: 9})
	if len(a.Steps) != 10 {
		t.Fatalf("expected 10 steps, got %d", len(a.Steps))
	}
	for i := range a.Steps {
		if a.Steps[i] != b.Steps[i] {
			t.Fatalf("step %d differs: %+v vs %+v", i, a.Steps[i], b.Steps[i])
		}
		if a.Steps[i].By < -240 || a.Steps[i].By > 400 {
			t.Errorf("step %d out of range: %f", i, a.Steps[i].By)
		}
	}
	if err := a.Validate(); err != nil {
		t.Error(err)
	}
}

func TestSweepAndWalks(t *testing.T) {
	g := gomega.NewWithT(t)
	sc := &Scenario{Name: "short", Duration: 1, Steps: []Step{{At: 0.1, Action: ActionScroll, To: 1000}}}
	out, err := RunSweep(context.Background(), sc, []Viewport{
		{Name: "desktop", Width: 1440, Height: 900},
		{Name: "mobile", Width: 390, Height: 844},
	}, desktop, dt, nil)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(out).To(gomega.HaveLen(2))
	g.Expect(out[1].Viewport.Name).To(gomega.Equal("mobile"))
	g.Expect(out[0].ReadyAt).To(gomega.BeNumerically(">", 0))

	walks, err := RunWalks(context.Background(), WalkConfig{Steps: 4, Interval: 0.2, MaxStep: 300, Seed: 5}, 3, desktop, dt)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(walks).To(gomega.HaveLen(3))
	g.Expect(walks[2].Seed).To(gomega.Equal(int64(7)))
	for _, w := range walks {
		g.Expect(w.FinalY).To(gomega.BeNumerically(">=", 0))
		g.Expect(w.Unstarted).To(gomega.Equal(0))
	}
}
