package dom

import (
	"testing"

	"github.com/san-kum/stride/internal/motion"
)

func testDoc() *Document {
	root := NewNode("page", KindPage, Box{Width: 1000, Height: 3000})
	hero := NewNode("hero", KindSection, Box{Width: 1000, Height: 800})
	title := NewNode("hero-title", KindHeading, Box{X: 100, Y: 300, Width: 600, Height: 100})
	hero.Append(title)
	footer := NewNode("footer", KindSection, Box{Y: 2600, Width: 1000, Height: 400})
	root.Append(hero, footer)
	return NewDocument(root)
}

func TestRefAndUnmount(t *testing.T) {
	doc := testDoc()
	if doc.Ref("hero-title") == nil {
		t.Fatal("expected ref")
	}
	if doc.Ref("missing") != nil {
		t.Error("expected nil for a missing id")
	}
	doc.Ref("hero").Unmount()
	if doc.Ref("hero-title") != nil {
		t.Error("unmounted nodes must not resolve")
	}
	refs := doc.Refs("footer", "hero")
	if refs[0] == nil || refs[1] != nil {
		t.Errorf("unexpected refs %v", refs)
	}
}

func TestSetPropOnUnmountedNodeDropped(t *testing.T) {
	doc := testDoc()
	title := doc.Ref("hero-title")
	title.SetProp(motion.Y, 10)
	title.Unmount()
	title.SetProp(motion.Y, 20)
	if title.Prop(motion.Y) != 10 {
		t.Errorf("expected write to be dropped, y=%v", title.Prop(motion.Y))
	}
	if title.Mutations() != 1 {
		t.Errorf("expected 1 mutation, got %d", title.Mutations())
	}
}

func TestNilNodeIsSafe(t *testing.T) {
	var n *Node
	n.SetProp(motion.Opacity, 0)
	if n.Mounted() {
		t.Error("nil node must not be mounted")
	}
	if n.Prop(motion.Scale) != 1 {
		t.Error("nil node reports rest values")
	}
}

func TestEffectiveComposesParents(t *testing.T) {
	doc := testDoc()
	hero := doc.Ref("hero")
	title := doc.Ref("hero-title")
	hero.SetProp(motion.Y, -50)
	hero.SetProp(motion.Opacity, 0.5)
	title.SetProp(motion.Y, 20)
	title.SetProp(motion.Opacity, 0.5)
	title.SetProp(motion.Scale, 2)

	e := title.Effective()
	if e.Y != -30 || e.Opacity != 0.25 || e.Scale != 2 {
		t.Errorf("unexpected effective transform %+v", e)
	}
}

func TestHit(t *testing.T) {
	doc := testDoc()
	hits := doc.Hit(150, 350)
	if len(hits) != 3 || hits[2].ID != "hero-title" {
		t.Errorf("expected page, hero and title, got %d hits", len(hits))
	}
}

type countingListener struct {
	scrolls []float64
	resizes int
}

func (c *countingListener) OnScroll(y float64)    { c.scrolls = append(c.scrolls, y) }
func (c *countingListener) OnResize(w, h float64) { c.resizes++ }

func TestWindowScrollClampsAndNotifies(t *testing.T) {
	doc := testDoc()
	w := NewWindow(doc, 1000, 800)
	l := &countingListener{}
	detach := w.Listen(l)

	w.ScrollTo(500)
	w.ScrollTo(500)
	w.ScrollTo(10000)
	w.ScrollBy(-100000)

	want := []float64{500, 2200, 0}
	if len(l.scrolls) != len(want) {
		t.Fatalf("expected %v, got %v", want, l.scrolls)
	}
	for i := range want {
		if l.scrolls[i] != want[i] {
			t.Errorf("scroll %d: expected %v, got %v", i, want[i], l.scrolls[i])
		}
	}

	detach()
	detach()
	w.ScrollTo(300)
	if len(l.scrolls) != 3 {
		t.Error("detached listener still notified")
	}
	if w.Listeners() != 0 {
		t.Errorf("expected no listeners, got %d", w.Listeners())
	}
}

func TestWindowResize(t *testing.T) {
	doc := testDoc()
	w := NewWindow(doc, 1000, 800)
	w.ScrollTo(2200)
	l := &countingListener{}
	w.Listen(l)
	w.Resize(1000, 1000)
	if w.ScrollY() != 2000 {
		t.Errorf("expected scroll clamped to 2000, got %v", w.ScrollY())
	}
	if l.resizes != 1 {
		t.Errorf("expected one resize, got %d", l.resizes)
	}
}

func TestPaint(t *testing.T) {
	doc := testDoc()
	doc.Ref("hero-title").Text = "JUST DO IT"
	win := NewWindow(doc, 1000, 800)

	ids := func(ps []Painted) map[string]Painted {
		m := map[string]Painted{}
		for _, p := range ps {
			m[p.Node.ID] = p
		}
		return m
	}

	painted := ids(win.Paint())
	if _, ok := painted["footer"]; ok {
		t.Error("footer is below the fold")
	}
	title, ok := painted["hero-title"]
	if !ok {
		t.Fatal("expected the title to paint")
	}
	if title.Text != "JUST DO IT" || title.Box.Y != 300 {
		t.Errorf("unexpected title paint %+v", title)
	}

	hero := doc.Ref("hero")
	hero.SetProp(motion.Y, 50)
	hero.SetProp(motion.Opacity, 0.5)
	tn := doc.Ref("hero-title")
	tn.SetProp(motion.Scale, 2)
	tn.SetProp(motion.RotateX, 90)
	tn.Hidden = true
	title = ids(win.Paint())["hero-title"]
	if title.Box.Width != 1200 || title.Box.Y != 300+50-50 {
		t.Errorf("expected scale about the centre plus parent offset, got %+v", title.Box)
	}
	if title.Alpha() != 0.5 {
		t.Errorf("expected inherited opacity, got %f", title.Alpha())
	}
	if !title.EdgeOn() || title.Text != "" {
		t.Error("expected an edge-on hidden title")
	}

	win.ScrollTo(2400)
	painted = ids(win.Paint())
	if _, ok := painted["footer"]; !ok {
		t.Error("footer should paint once scrolled to")
	}
	hero.SetProp(motion.Opacity, 0)
	if _, ok := ids(win.Paint())["hero-title"]; ok {
		t.Error("transparent subtrees are skipped")
	}
}
