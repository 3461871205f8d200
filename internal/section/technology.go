package section

import (
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/timeline"
	"github.com/san-kum/stride/internal/trigger"
)

// Technology reveals the background, title and cards, keeps each card
// drifting, and runs a four-part hover per card.
type Technology struct {
	base
	Cards  int
	Floats []*timeline.Yoyo
}

func NewTechnology() *Technology { return &Technology{base: base{name: "technology"}, Cards: 4} }

func (t *Technology) Mount(env *Env) {
	if !t.begin(env) {
		return
	}
	section := t.ref(site.SectionTechnology)
	bg := t.ref(site.TechBackground)
	title := t.ref(site.TechTitle)

	t.parallax("parallax", section, trigger.Top(1), trigger.Bottom(0), []timeline.Step{
		between(bg, motion.Props{motion.Y: 0}, motion.Props{motion.Y: 100}, 1, 0, linear),
	})
	t.reveal("background", section, trigger.Top(0.8), []timeline.Step{
		fromTo(bg, motion.Props{motion.Scale: 1.1, motion.Opacity: 0}, 2, 0, power2Out),
	})
	t.reveal("title", title, trigger.Top(0.85), []timeline.Step{
		fromTo(title, motion.Props{motion.Y: 100, motion.Opacity: 0, motion.RotateX: -90}, 1.5, 0, backOut),
	})

	t.Floats = nil
	for i := 0; i < t.Cards; i++ {
		card := t.ref(site.TechCard(i))
		t.reveal("card", card, trigger.Top(0.9), []timeline.Step{
			fromTo(card, motion.Props{motion.Y: 150, motion.Opacity: 0, motion.Scale: 0.8, motion.RotateY: 45}, 1.2, 0.5+float64(i)*0.2, backOut),
		})

		amp := motion.Props{
			motion.Y:        t.env.Between(-10, 10),
			motion.X:        t.env.Between(-5, 5),
			motion.Rotation: t.env.Between(-2, 2),
		}
		if f := t.float("card", t.ref(site.TechFloat(i)), amp, t.env.Between(4, 6), float64(i)*0.5); f != nil {
			t.Floats = append(t.Floats, f)
		}

		cardBg := t.ref(site.TechCardBackground(i))
		set(cardBg, motion.Props{motion.Opacity: 0.1})
		t.hover("card", card,
			HoverPart{
				Node:     card,
				Emphasis: motion.Props{motion.Scale: 1.05, motion.Y: -10},
				Rest:     motion.Props{motion.Scale: 1, motion.Y: 0},
				Duration: 0.4,
			},
			HoverPart{
				Node:     t.ref(site.TechIcon(i)),
				Emphasis: motion.Props{motion.Scale: 1.2, motion.Rotation: 360},
				Rest:     motion.Props{motion.Scale: 1, motion.Rotation: 0},
				Duration: 0.6,
			},
			HoverPart{
				Node:     cardBg,
				Emphasis: motion.Props{motion.Opacity: 1, motion.Scale: 1.1},
				Rest:     motion.Props{motion.Opacity: 0.1, motion.Scale: 1},
				Duration: 0.4,
			},
			HoverPart{
				Node:     t.ref(site.TechContent(i)),
				Emphasis: motion.Props{motion.Y: -5},
				Rest:     motion.Props{motion.Y: 0},
				Duration: 0.4,
			},
		)
	}
}
