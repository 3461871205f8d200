package section

import (
	"math"

	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/timeline"
)

// Loading runs the splash sequence: logo entrance, progress bar fill and a
// logo pulse. Finishing it is what lets the page reveal; Dismiss then
// fades the overlay away.
type Loading struct {
	base
	Intro *timeline.Timeline
	Exit  *timeline.Timeline

	timing     LoadingTiming
	bar        *dom.Node
	barStart   float64
	onFinished func()
	finished   bool
	dismissed  bool
}

// LoadingTiming holds the splash durations in seconds.
type LoadingTiming struct {
	Logo     float64
	Progress float64
	Fade     float64
}

var DefaultLoadingTiming = LoadingTiming{Logo: 1, Progress: 2.5, Fade: 1}

func NewLoading() *Loading {
	return &Loading{base: base{name: "loading"}, timing: DefaultLoadingTiming}
}

// SetTiming replaces the durations; zero fields keep their defaults. It
// must be called before Mount.
func (l *Loading) SetTiming(t LoadingTiming) {
	if t.Logo > 0 {
		l.timing.Logo = t.Logo
	}
	if t.Progress > 0 {
		l.timing.Progress = t.Progress
	}
	if t.Fade > 0 {
		l.timing.Fade = t.Fade
	}
}

func (l *Loading) Timing() LoadingTiming { return l.timing }

// OnFinished registers the callback run once the sequence completes. It
// must be set before Mount.
func (l *Loading) OnFinished(fn func()) { l.onFinished = fn }

func (l *Loading) Mount(env *Env) {
	if !l.begin(env) {
		return
	}
	l.finished, l.dismissed = false, false
	overlay := l.ref(site.Loading)
	logo := l.ref(site.LoadingLogo)
	l.bar = l.ref(site.LoadingProgress)
	set(overlay, motion.Props{motion.Opacity: 1})

	// The bar overlaps the last half second of the logo entrance and the
	// pulse overlaps the last half second of the fill.
	tm := l.timing
	l.barStart = math.Max(0, tm.Logo-0.5)
	pulse := math.Max(0, l.barStart+tm.Progress-0.5)
	l.Intro = l.intro("intro", []timeline.Step{
		fromTo(logo, motion.Props{motion.Scale: 0.8, motion.Opacity: 0}, tm.Logo, 0, backOut),
		between(l.bar, motion.Props{motion.Width: 0}, motion.Props{motion.Width: 1}, tm.Progress, l.barStart, power2Out),
		between(logo, motion.Props{motion.Scale: 1}, motion.Props{motion.Scale: 1.05}, 0.3, pulse, power2InOut),
		between(logo, motion.Props{motion.Scale: 1.05}, motion.Props{motion.Scale: 1}, 0.3, pulse+0.3, power2InOut),
	})
	if l.Intro == nil {
		l.finish()
		return
	}
	l.Intro.OnComplete(l.finish)
}

func (l *Loading) finish() {
	if l.finished {
		return
	}
	l.finished = true
	if l.onFinished != nil {
		l.onFinished()
	}
}

func (l *Loading) Finished() bool { return l.finished }

// Progress is the fill fraction of the bar.
func (l *Loading) Progress() float64 {
	if l.bar == nil {
		if l.finished {
			return 1
		}
		return 0
	}
	return l.bar.Prop(motion.Width)
}

// Indeterminate reports whether the bar has yet to start filling.
func (l *Loading) Indeterminate() bool {
	return !l.finished && l.Intro != nil && l.Intro.Head() < l.barStart
}

// Dismiss fades the overlay out and runs done when it is gone. Only the
// first call has an effect.
func (l *Loading) Dismiss(done func()) {
	if !l.Mounted() || l.dismissed {
		return
	}
	l.dismissed = true
	if done == nil {
		done = func() {}
	}
	l.Exit = l.build("exit", []timeline.Step{
		between(l.ref(site.Loading), motion.Props{motion.Opacity: 1}, motion.Props{motion.Opacity: 0}, l.timing.Fade, 0, power2InOut),
	})
	if l.Exit == nil {
		done()
		return
	}
	l.record("exit", "timeline", "dismiss", l.Exit.Steps())
	l.Exit.OnComplete(done)
	l.Exit.Play()
}
