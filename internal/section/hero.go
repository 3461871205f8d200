package section

import (
	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/timeline"
	"github.com/san-kum/stride/internal/trigger"
)

// Hero plays the intro cascade on mount: video settle, overlay, the title
// one character at a time, subtitle, call to action and particles that
// then drift. The video also zooms with scroll.
type Hero struct {
	base
	Particles int
	Chars     []CharCell
	Intro     *timeline.Timeline
	Floats    []*timeline.Yoyo
}

func NewHero() *Hero { return &Hero{base: base{name: "hero"}, Particles: 4} }

func (h *Hero) Mount(env *Env) {
	if !h.begin(env) {
		return
	}
	hero := h.ref(site.SectionHero)
	video := h.ref(site.HeroVideo)
	title := h.ref(site.HeroTitle)
	cta := h.ref(site.HeroCTA)

	// Registered before the intro so the intro's initial render wins.
	h.parallax("parallax", hero, trigger.Top(0), trigger.Bottom(0), []timeline.Step{
		between(video, motion.Props{motion.Scale: 1}, motion.Props{motion.Scale: 1.1}, 1, 0, linear),
	})

	steps := []timeline.Step{
		fromTo(video, motion.Props{motion.Scale: 1.1, motion.Opacity: 0}, 2.5, 0, power2Out),
		fromTo(h.ref(site.HeroOverlay), motion.Props{motion.Opacity: 0}, 1.5, 0.5, power2InOut),
	}
	var chars []*dom.Node
	h.Chars, chars = h.decompose(title, 1, 0.05)
	for i, c := range h.Chars {
		steps = append(steps, fromTo(chars[i],
			motion.Props{motion.Y: 100, motion.Opacity: 0, motion.RotateX: 90}, 1.2, c.Delay, backOut))
	}
	steps = append(steps,
		fromTo(h.ref(site.HeroSubtitle), motion.Props{motion.Y: 50, motion.Opacity: 0, motion.Blur: 10}, 1.5, 1.8, power3Out),
		fromTo(cta, motion.Props{motion.Scale: 0.8, motion.Opacity: 0}, 1, 2.2, elasticOut),
	)

	particles := make([]*dom.Node, h.Particles)
	for i := range particles {
		particles[i] = h.ref(site.HeroParticle(i))
		steps = append(steps, fromTo(particles[i], motion.Props{motion.Opacity: 0}, 1, 2.5+float64(i)*0.3, power2Out))
	}
	h.Intro = h.intro("intro", steps)

	h.Floats = nil
	for i, p := range particles {
		amp := motion.Props{
			motion.Y:        h.env.Between(-20, 20),
			motion.X:        h.env.Between(-15, 15),
			motion.Rotation: h.env.Between(-10, 10),
		}
		period := h.env.Between(3, 5)
		if f := h.float("particle", p, amp, period, 2.5+float64(i)*0.3+1); f != nil {
			h.Floats = append(h.Floats, f)
		}
	}

	h.hover("cta", cta, HoverPart{
		Node:     cta,
		Emphasis: motion.Props{motion.Scale: 1.05, motion.Y: -2},
		Rest:     motion.Props{motion.Scale: 1, motion.Y: 0},
		Duration: 0.3,
		Ease:     power2Out,
	})
}
