package section

import (
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/timeline"
	"github.com/san-kum/stride/internal/trigger"
)

// Products reveals the showcase title, description and cards as they
// scroll into view and drifts the section upward while it passes.
type Products struct {
	base
	Cards int
}

func NewProducts() *Products { return &Products{base: base{name: "products"}, Cards: 4} }

func (p *Products) Mount(env *Env) {
	if !p.begin(env) {
		return
	}
	section := p.ref(site.SectionProducts)
	title := p.ref(site.ProductsTitle)
	desc := p.ref(site.ProductsDesc)

	p.reveal("title", title, trigger.Top(0.8), []timeline.Step{
		fromTo(title, motion.Props{motion.Y: 100, motion.Opacity: 0}, 1.2, 0, power3Out),
	})
	p.reveal("description", desc, trigger.Top(0.8), []timeline.Step{
		fromTo(desc, motion.Props{motion.Y: 50, motion.Opacity: 0}, 1, 0.3, power3Out),
	})

	for i := 0; i < p.Cards; i++ {
		card := p.ref(site.ProductCard(i))
		p.reveal("card", card, trigger.Top(0.85), []timeline.Step{
			fromTo(card, motion.Props{motion.Y: 100, motion.Opacity: 0, motion.Scale: 0.8, motion.RotateY: 15}, 1.2, float64(i)*0.2, backOut),
		})

		overlay := p.ref(site.ProductOverlay(i))
		set(overlay, motion.Props{motion.Opacity: 0})
		p.hover("card", card,
			HoverPart{
				Node:     p.ref(site.ProductImage(i)),
				Emphasis: motion.Props{motion.Scale: 1.1},
				Rest:     motion.Props{motion.Scale: 1},
				Duration: 0.6,
			},
			HoverPart{
				Node:     overlay,
				Emphasis: motion.Props{motion.Opacity: 1},
				Rest:     motion.Props{motion.Opacity: 0},
				Duration: 0.4,
			},
			HoverPart{
				Node:     p.ref(site.ProductInfo(i)),
				Emphasis: motion.Props{motion.Y: -10},
				Rest:     motion.Props{motion.Y: 0},
				Duration: 0.4,
			},
		)
	}

	p.parallax("parallax", section, trigger.Top(1), trigger.Bottom(0), []timeline.Step{
		between(section, motion.Props{motion.Y: 0}, motion.Props{motion.Y: -50}, 1, 0, linear),
	})
}
