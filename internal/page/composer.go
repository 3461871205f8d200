package page

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/ease"
	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/section"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/timeline"
)

var (
	ErrNotReady       = errors.New("page: not ready")
	ErrUnknownSection = errors.New("page: unknown section")
)

type Option func(*Composer)

// WithSmoothScroll sets how long Navigate takes to scroll to a section.
func WithSmoothScroll(seconds float64) Option {
	return func(c *Composer) { c.smooth = seconds }
}

// WithLoadingTiming overrides the splash durations.
func WithLoadingTiming(t section.LoadingTiming) Option {
	return func(c *Composer) { c.timing = t }
}

func WithOnReady(fn func()) Option {
	return func(c *Composer) { c.onReady = fn }
}

// Composer mounts the loading screen, then the sections in page order once
// loading finishes, and routes input to them when the page is ready.
type Composer struct {
	env      *section.Env
	log      *slog.Logger
	reg      *section.Registry
	gate     *Gate
	loading  *section.Loading
	sections []section.Controller
	fadeIn   *timeline.Timeline
	scroll   *timeline.Timeline
	hovered  *section.Hover
	smooth   float64
	timing   section.LoadingTiming
	onReady  func()
	started  bool
	closed   bool
}

func New(env *section.Env, opts ...Option) *Composer {
	c := &Composer{
		env:    env,
		log:    env.Log.With("component", "page"),
		reg:    section.NewRegistry(),
		gate:   NewGate(),
		smooth: 1,
	}
	for _, o := range opts {
		o(c)
	}
	c.gate.OnChange(c.enter)
	return c
}

// Start mounts the loading screen and begins the gate. Calling it again
// does nothing.
func (c *Composer) Start() {
	if c.started || c.closed {
		return
	}
	c.started = true
	c.loading = section.NewLoading()
	c.loading.SetTiming(c.timing)
	c.loading.OnFinished(func() { c.gate.Advance() })
	c.log.Info("page loading")
	c.loading.Mount(c.env)
}

func (c *Composer) enter(s State) {
	c.log.Info("page state", "state", s.String())
	switch s {
	case Revealing:
		c.reveal()
	case Ready:
		c.loading.Unmount()
		c.env.Doc.Ref(site.Loading).Unmount()
		if c.onReady != nil {
			c.onReady()
		}
	}
}

func (c *Composer) reveal() {
	for _, name := range c.reg.Sections() {
		ctrl, err := c.reg.New(name)
		if err != nil {
			c.log.Error("controller", "name", name, "err", err)
			continue
		}
		ctrl.Mount(c.env)
		c.sections = append(c.sections, ctrl)
	}

	steps := make([]timeline.Step, 0, len(site.Sections))
	for _, id := range site.Sections {
		steps = append(steps, timeline.Step{
			Target:   c.env.Doc.Ref(id),
			From:     motion.Props{motion.Opacity: 0},
			To:       motion.Props{motion.Opacity: 1},
			Duration: 1,
			Ease:     ease.PowerOut(2),
			Label:    id,
		})
	}
	tl, err := timeline.Build(c.env.Loop, steps, timeline.WithLabel("page/fade-in"))
	if err != nil {
		c.log.Warn("timeline rejected", "timeline", "fade-in", "err", err)
	} else {
		c.fadeIn = tl
		tl.Play()
	}

	c.loading.Dismiss(func() { c.gate.Advance() })
}

// Tick advances every animation by dt seconds.
func (c *Composer) Tick(dt float64) { c.env.Loop.Advance(dt) }

func (c *Composer) State() State { return c.gate.State() }

func (c *Composer) Gate() *Gate { return c.gate }

func (c *Composer) Env() *section.Env { return c.env }

func (c *Composer) Loading() *section.Loading { return c.loading }

// Controllers returns the mounted section controllers in page order.
func (c *Composer) Controllers() []section.Controller { return c.sections }

func (c *Composer) ready() error {
	if c.closed || c.gate.State() != Ready {
		return ErrNotReady
	}
	return nil
}

// ScrollBy scrolls the window directly, cancelling a navigation in flight.
func (c *Composer) ScrollBy(dy float64) error {
	if err := c.ready(); err != nil {
		return err
	}
	c.scroll.Cancel()
	c.env.Win.ScrollBy(dy)
	return nil
}

func (c *Composer) ScrollTo(y float64) error {
	if err := c.ready(); err != nil {
		return err
	}
	c.scroll.Cancel()
	c.env.Win.ScrollTo(y)
	return nil
}

// Navigate smooth-scrolls so the section's top meets the viewport top.
// A leading '#' is accepted.
func (c *Composer) Navigate(id string) error {
	if err := c.ready(); err != nil {
		return err
	}
	id = strings.TrimPrefix(id, "#")
	target := c.env.Doc.Ref(id)
	if target == nil || target.Kind != dom.KindSection {
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	c.scroll.Cancel()
	tl, err := timeline.To(c.env.Loop, windowTarget{c.env.Win}, motion.Props{motion.Y: target.Box.Y}, c.smooth, ease.PowerInOut(2))
	if err != nil {
		return fmt.Errorf("page: navigate: %w", err)
	}
	c.scroll = tl
	c.log.Debug("navigate", "section", id, "to", target.Box.Y)
	return nil
}

// Navigating reports whether a smooth scroll is in flight.
func (c *Composer) Navigating() bool { return c.scroll.Playing() }

// Hovers lists every hover zone of the mounted sections.
func (c *Composer) Hovers() []*section.Hover {
	var out []*section.Hover
	for _, s := range c.sections {
		out = append(out, s.Hovers()...)
	}
	return out
}

// HoverAt returns the innermost hover under a viewport point.
func (c *Composer) HoverAt(x, y float64) *section.Hover {
	docY := y + c.env.Win.ScrollY()
	var best *section.Hover
	for _, h := range c.Hovers() {
		if !h.Contains(x, docY) {
			continue
		}
		if best == nil || area(h.Zone.Box) < area(best.Zone.Box) {
			best = h
		}
	}
	return best
}

func area(b dom.Box) float64 { return b.Width * b.Height }

// PointerMove moves hover state to the zone under a viewport point.
// Input before the page is ready is ignored.
func (c *Composer) PointerMove(x, y float64) {
	if c.ready() != nil {
		return
	}
	next := c.HoverAt(x, y)
	if next == c.hovered {
		return
	}
	c.hovered.Leave()
	next.Enter()
	c.hovered = next
}

// PointerLeave ends any hover, as when the pointer leaves the window.
func (c *Composer) PointerLeave() {
	c.hovered.Leave()
	c.hovered = nil
}

// Hovered returns the zone currently under the pointer.
func (c *Composer) Hovered() *section.Hover { return c.hovered }

// Click follows the in-page link under a viewport point. It returns the
// section navigated to, or "" when the point holds no link.
func (c *Composer) Click(x, y float64) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}
	h := c.HoverAt(x, y)
	if h == nil || len(h.Href) < 2 || h.Href[0] != '#' {
		return "", nil
	}
	id := h.Href[1:]
	if err := c.Navigate(id); err != nil {
		return "", err
	}
	return id, nil
}

// Resize changes the viewport; triggers recompute their lines.
func (c *Composer) Resize(w, h float64) {
	c.env.Win.Resize(w, h)
}

// Close unmounts every controller, last mounted first.
func (c *Composer) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.scroll.Cancel()
	c.fadeIn.Cancel()
	c.hovered = nil
	for i := len(c.sections) - 1; i >= 0; i-- {
		c.sections[i].Unmount()
	}
	if c.loading != nil {
		c.loading.Unmount()
	}
	c.log.Info("page closed")
}

// windowTarget lets a tween drive the window's scroll position.
type windowTarget struct{ win *dom.Window }

func (w windowTarget) Prop(p motion.Prop) float64 {
	if p == motion.Y {
		return w.win.ScrollY()
	}
	return p.Rest()
}

func (w windowTarget) SetProp(p motion.Prop, v float64) {
	if p == motion.Y {
		w.win.ScrollTo(v)
	}
}

func (w windowTarget) Mounted() bool { return true }
