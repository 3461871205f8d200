package section

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/stride/internal/site"
)

func TestSplitChars(t *testing.T) {
	g := gomega.NewWithT(t)
	cells := SplitChars("JUST DO IT", 1, 0.05)
	g.Expect(cells).To(gomega.HaveLen(10))
	for i, c := range cells {
		g.Expect(c.Index).To(gomega.Equal(i))
		g.Expect(c.Delay).To(gomega.BeNumerically("~", 1+float64(i)*0.05, 1e-12))
		if i > 0 {
			g.Expect(c.Delay).To(gomega.BeNumerically(">", cells[i-1].Delay))
		}
	}
	g.Expect(cells[4].Placeholder).To(gomega.BeTrue())
	g.Expect(cells[4].Display).To(gomega.Equal(" "))
	g.Expect(cells[0].Display).To(gomega.Equal("J"))
	g.Expect(SplitChars("", 0, 0.1)).To(gomega.BeEmpty())
}

func TestSplitCharsCountsRunes(t *testing.T) {
	cells := SplitChars("ÉTÉ", 0, 1)
	if len(cells) != 3 || cells[2].Delay != 2 {
		t.Errorf("expected 3 rune cells, got %+v", cells)
	}
}

func TestDecomposeAndRestore(t *testing.T) {
	env := newTestEnv()
	title := env.Doc.Ref(site.HeroTitle)
	before := len(title.Children)

	nodes, restore := Decompose(env.Doc, title, SplitChars(title.Text, 0, 0.1))
	if len(nodes) != len([]rune(title.Text)) {
		t.Fatalf("expected a node per character, got %d", len(nodes))
	}
	if !title.Hidden || title.Label != "JUST DO IT" {
		t.Errorf("parent should keep its text for accessibility: hidden=%v label=%q", title.Hidden, title.Label)
	}
	if env.Doc.Ref(charID(site.HeroTitle, 0)) == nil {
		t.Error("character nodes must be indexed")
	}
	if nodes[len(nodes)-1].Box.X+nodes[len(nodes)-1].Box.Width > title.Box.X+title.Box.Width+1e-9 {
		t.Error("characters overflow the title box")
	}

	restore()
	if title.Hidden || len(title.Children) != before {
		t.Error("restore should undo the split")
	}
	if env.Doc.Ref(charID(site.HeroTitle, 0)) != nil {
		t.Error("character nodes must be gone after restore")
	}
}

func TestDecomposeNilParent(t *testing.T) {
	env := newTestEnv()
	nodes, restore := Decompose(env.Doc, nil, SplitChars("AB", 0, 1))
	restore()
	if nodes != nil {
		t.Error("expected no nodes for a missing parent")
	}
}
