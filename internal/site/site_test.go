package site

import (
	"strings"
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/stride/internal/dom"
)

func TestDefaultContent(t *testing.T) {
	g := gomega.NewWithT(t)
	c, err := DefaultContent()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(c.Hero.Title).To(gomega.Equal("JUST DO IT"))
	g.Expect(c.Products.Items).To(gomega.HaveLen(4))
	g.Expect(c.Athletes.Stats).To(gomega.HaveLen(4))
	g.Expect(c.Athletes.Stats[3].Number).To(gomega.Equal("1971"))
	g.Expect(c.Technology.Items[0].Name).To(gomega.Equal("AIR ZOOM"))
	g.Expect(c.Footer.Groups).To(gomega.HaveLen(3))
	for _, grp := range c.Footer.Groups {
		g.Expect(grp.Links).To(gomega.HaveLen(4))
	}
	g.Expect(c.Nav.Links).To(gomega.HaveLen(4))
	g.Expect(c.Hero.Subtitle).NotTo(gomega.ContainSubstring("\n"))
}

func TestContentSectionsAndNodeIDs(t *testing.T) {
	g := gomega.NewWithT(t)
	c := MustContent()
	var loading LoadingContent = c.Loading
	var nav NavContent = c.Nav
	g.Expect(loading.Title).To(gomega.Equal("NIKE"))
	g.Expect(loading.Tagline).To(gomega.Equal("JUST DO IT"))
	g.Expect(nav.Links[0]).To(gomega.Equal(NavLinkContent{Label: "HOME", Target: "hero"}))

	doc := Build(c, 1440, 900)
	g.Expect(doc.Ref(Loading)).NotTo(gomega.BeNil())
	g.Expect(doc.Ref(Nav)).NotTo(gomega.BeNil())
	g.Expect(doc.Ref(NavLink(0))).NotTo(gomega.BeNil())
}

func TestParseContentError(t *testing.T) {
	if _, err := ParseContent([]byte("hero: [")); err == nil || !strings.HasPrefix(err.Error(), "site:") {
		t.Errorf("expected a site error, got %v", err)
	}
}

func TestBuildStacksSections(t *testing.T) {
	for _, vp := range [][2]float64{{1440, 900}, {820, 1180}, {390, 844}} {
		doc := Build(MustContent(), vp[0], vp[1])
		y := 0.0
		for _, id := range Sections {
			sec := doc.Ref(id)
			if sec == nil {
				t.Fatalf("%vx%v: missing section %s", vp[0], vp[1], id)
			}
			if sec.Box.Y != y {
				t.Errorf("%vx%v: section %s at %v, expected %v", vp[0], vp[1], id, sec.Box.Y, y)
			}
			y = sec.Box.Bottom()
		}
		if doc.Height() != y {
			t.Errorf("document height %v, expected %v", doc.Height(), y)
		}
		if doc.Ref(SectionHero).Box.Height != vp[1] {
			t.Error("hero must fill the first viewport")
		}
	}
}

func TestBuildNodesInsideSections(t *testing.T) {
	doc := Build(MustContent(), 1440, 900)
	for _, id := range Sections {
		sec := doc.Ref(id)
		sec.Walk(func(n *dom.Node) bool {
			if n.Box.Y < sec.Box.Y || n.Box.Bottom() > sec.Box.Bottom()+1e-9 {
				t.Errorf("%s escapes %s: %+v vs %+v", n.ID, id, n.Box, sec.Box)
			}
			return true
		})
	}
}

func TestBuildReferences(t *testing.T) {
	doc := Build(MustContent(), 1440, 900)
	ids := []string{Loading, LoadingLogo, LoadingProgress, Nav, NavLogo, HeroVideo, HeroOverlay,
		HeroTitle, HeroSubtitle, HeroCTA, ProductsTitle, ProductsDesc, AthletesVideo,
		AthletesContent, AthletesTitle, AthletesQuote, TechBackground, TechTitle,
		FooterContent, FooterLogo}
	for i := 0; i < 4; i++ {
		ids = append(ids, NavLink(i), HeroParticle(i), ProductCard(i), ProductImage(i),
			ProductOverlay(i), ProductInfo(i), AthleteStat(i), AthleteStatNumber(i),
			TechCard(i), TechFloat(i), TechIcon(i), TechCardBackground(i), TechContent(i),
			FooterSocial(i))
	}
	for i := 0; i < 3; i++ {
		ids = append(ids, FooterGroup(i))
	}
	for _, id := range ids {
		if doc.Ref(id) == nil {
			t.Errorf("missing node %s", id)
		}
	}
	if got := doc.Ref(NavLink(2)).Href; got != "#athletes" {
		t.Errorf("nav link href %q", got)
	}
	last := doc.Root.Children[len(doc.Root.Children)-1]
	if last.ID != Loading {
		t.Errorf("loading overlay must paint last, got %s", last.ID)
	}
}
