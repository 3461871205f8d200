package section

import (
	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/timeline"
)

// Navbar drops in from above on mount. Its links scale on hover and
// navigate on click; the language buttons scale on hover.
type Navbar struct {
	base
	Links     int
	Languages int
	Intro     *timeline.Timeline
}

func NewNavbar() *Navbar { return &Navbar{base: base{name: "navbar"}, Links: 4, Languages: 2} }

func (n *Navbar) Mount(env *Env) {
	if !n.begin(env) {
		return
	}
	lang := n.ref(site.NavLang)
	steps := []timeline.Step{
		fromTo(n.ref(site.Nav), motion.Props{motion.Y: -100, motion.Opacity: 0}, 1.5, 0.5, power3Out),
		fromTo(n.ref(site.NavLogo), motion.Props{motion.Scale: 0, motion.Rotation: -180}, 1, 1, backOut),
	}
	links := make([]*dom.Node, n.Links)
	for i, d := range timeline.Stagger(1.2, 0.1, n.Links) {
		links[i] = n.ref(site.NavLink(i))
		steps = append(steps, fromTo(links[i], motion.Props{motion.Y: -20, motion.Opacity: 0}, 0.8, d, power2Out))
	}
	steps = append(steps, fromTo(lang, motion.Props{motion.X: 50, motion.Opacity: 0}, 1, 1.5, power2Out))
	n.Intro = n.intro("intro", steps)

	for _, l := range links {
		n.hover("link", l, scale(l, 1.05, 0.3))
	}
	for i := 0; i < n.Languages; i++ {
		b := n.ref(site.NavLanguage(i))
		n.hover("language", b, scale(b, 1.1, 0.2))
	}
}
