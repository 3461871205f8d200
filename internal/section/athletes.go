package section

import (
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/timeline"
	"github.com/san-kum/stride/internal/trigger"
)

// Athletes reveals the video, the content column, the title by character,
// the quote and each stat, and scrolls the video slower than the page.
type Athletes struct {
	base
	Stats int
	Chars []CharCell
}

func NewAthletes() *Athletes { return &Athletes{base: base{name: "athletes"}, Stats: 4} }

func (a *Athletes) Mount(env *Env) {
	if !a.begin(env) {
		return
	}
	section := a.ref(site.SectionAthletes)
	video := a.ref(site.AthletesVideo)
	content := a.ref(site.AthletesContent)
	title := a.ref(site.AthletesTitle)
	quote := a.ref(site.AthletesQuote)

	a.reveal("video", section, trigger.Top(0.7), []timeline.Step{
		fromTo(video, motion.Props{motion.Scale: 1.2, motion.Opacity: 0}, 2, 0, power2Out),
	})
	a.reveal("content", content, trigger.Top(0.8), []timeline.Step{
		fromTo(content, motion.Props{motion.X: 100, motion.Opacity: 0}, 1.5, 0.5, power3Out),
	})

	cells, chars := a.decompose(title, 0.8, 0.03)
	a.Chars = cells
	steps := make([]timeline.Step, 0, len(cells))
	for i, c := range cells {
		steps = append(steps, fromTo(chars[i],
			motion.Props{motion.Y: 50, motion.Opacity: 0, motion.RotateY: 90}, 0.8, c.Delay, backOut))
	}
	a.reveal("title", title, trigger.Top(0.85), steps)

	a.reveal("quote", quote, trigger.Top(0.8), []timeline.Step{
		fromTo(quote, motion.Props{motion.Opacity: 0}, 1, 1.5, power2Out),
	})

	for i := 0; i < a.Stats; i++ {
		stat := a.ref(site.AthleteStat(i))
		a.reveal("stat", stat, trigger.Top(0.85), []timeline.Step{
			fromTo(stat, motion.Props{motion.Y: 30, motion.Opacity: 0, motion.Scale: 0.8}, 1, 2+float64(i)*0.1, backOut),
			fromTo(a.ref(site.AthleteStatNumber(i)), motion.Props{motion.Scale: 0.5, motion.Opacity: 0}, 0.8, 2.2+float64(i)*0.1, elasticOut),
		})
	}

	a.parallax("parallax", section, trigger.Top(1), trigger.Bottom(0), []timeline.Step{
		between(video, motion.Props{motion.Y: 0}, motion.Props{motion.Y: -100}, 1, 0, linear),
	})
}
