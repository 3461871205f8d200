package section

import (
	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/timeline"
	"github.com/san-kum/stride/internal/trigger"
)

// Footer reveals its content, logo, link groups and social icons once the
// footer top passes 80% of the viewport.
type Footer struct {
	base
	Groups  int
	Socials int
}

func NewFooter() *Footer { return &Footer{base: base{name: "footer"}, Groups: 3, Socials: 4} }

func (f *Footer) Mount(env *Env) {
	if !f.begin(env) {
		return
	}
	footer := f.ref(site.SectionFooter)
	start := trigger.Top(0.8)

	f.reveal("content", footer, start, []timeline.Step{
		fromTo(f.ref(site.FooterContent), motion.Props{motion.Y: 100, motion.Opacity: 0}, 1.5, 0, power3Out),
	})
	f.reveal("logo", footer, start, []timeline.Step{
		fromTo(f.ref(site.FooterLogo), motion.Props{motion.Scale: 0.8, motion.Opacity: 0}, 1, 0.3, backOut),
	})

	for i := 0; i < f.Groups; i++ {
		items := links(f.ref(site.FooterGroup(i)))
		steps := make([]timeline.Step, 0, len(items))
		for j, d := range timeline.Stagger(0.5+float64(i)*0.2, 0.1, len(items)) {
			steps = append(steps, fromTo(items[j], motion.Props{motion.Y: 30, motion.Opacity: 0}, 0.8, d, power2Out))
		}
		f.reveal("links", footer, start, steps)
	}

	socials := make([]timeline.Step, 0, f.Socials)
	delays := timeline.Stagger(1, 0.1, f.Socials)
	for i := 0; i < f.Socials; i++ {
		s := f.ref(site.FooterSocial(i))
		socials = append(socials, fromTo(s, motion.Props{motion.Scale: 0, motion.Rotation: 180}, 0.8, delays[i], backOut))
		f.hover("social", s, HoverPart{
			Node:     s,
			Emphasis: motion.Props{motion.Scale: 1.1, motion.Rotation: 360},
			Rest:     motion.Props{motion.Scale: 1, motion.Rotation: 0},
			Duration: 0.6,
		})
	}
	f.reveal("socials", footer, start, socials)
}

// links returns the link children of a group in order.
func links(group *dom.Node) []*dom.Node {
	if group == nil {
		return nil
	}
	var out []*dom.Node
	for _, c := range group.Children {
		if c.Kind == dom.KindLink {
			out = append(out, c)
		}
	}
	return out
}
