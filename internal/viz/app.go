package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/page"
	"github.com/san-kum/stride/internal/section"
	"github.com/san-kum/stride/internal/sim"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/trigger"
)

const (
	panelWidth      = 36
	historyCapacity = 240
	eventCapacity   = 8
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type TickMsg time.Time

// Options configures the page shown by the app.
type Options struct {
	Name    string
	Setup   sim.Setup
	FPS     int
	Step    float64
	Theme   string
	GIFPath string
}

// App is the interactive page model.
type App struct {
	opts     Options
	runner   *sim.Runner
	comp     *page.Composer
	theme    Theme
	dt       float64
	width    int
	height   int
	progress []float64
	activity []float64
	writes   int
	events   []string
	focus    int
	status   string
	showHelp bool
	rec      *Recorder
	last     *Grid
}

func NewApp(opts Options) *App {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Step <= 0 {
		opts.Step = 120
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "stride.gif"
	}
	r := sim.New(opts.Setup)
	r.Start()
	return &App{
		opts:     opts,
		runner:   r,
		comp:     r.Composer(),
		theme:    GetTheme(opts.Theme),
		dt:       1 / float64(opts.FPS),
		width:    120,
		height:   36,
		progress: make([]float64, 0, historyCapacity),
		focus:    -1,
	}
}

func (a *App) Composer() *page.Composer { return a.comp }

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a *App) Init() tea.Cmd { return a.tick() }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return a, a.key(msg.String())
	case tea.MouseMsg:
		a.mouse(msg)
	case TickMsg:
		a.advance()
		return a, a.tick()
	}
	return a, nil
}

// advance steps the page one frame and updates the side panel history.
func (a *App) advance() {
	f := a.runner.Step(a.dt)
	for _, e := range f.Events {
		a.logEvent(e)
	}
	a.progress = append(a.progress, a.scrollProgress())
	a.activity = append(a.activity, float64(max(f.Mutations-a.writes, 0)))
	a.writes = f.Mutations
	if len(a.progress) > historyCapacity {
		a.progress = a.progress[1:]
		a.activity = a.activity[1:]
	}
	if a.rec != nil {
		a.rec.Capture(a.grid(), a.theme)
	}
}

func (a *App) logEvent(e trigger.Event) {
	if e.Kind == trigger.EventProgress {
		return
	}
	a.events = append(a.events, fmt.Sprintf("%6.2fs %-10s %s", a.runner.Time(), e.Kind, e.Name))
	if len(a.events) > eventCapacity {
		a.events = a.events[1:]
	}
}

func (a *App) scrollProgress() float64 {
	win := a.comp.Env().Win
	if win.MaxScroll() <= 0 {
		return 0
	}
	return win.ScrollY() / win.MaxScroll()
}

func (a *App) key(k string) tea.Cmd {
	win := a.comp.Env().Win
	var err error
	switch k {
	case "q", "ctrl+c":
		a.stopRecording()
		a.comp.Close()
		return tea.Quit
	case "j", "down":
		err = a.comp.ScrollBy(a.opts.Step)
	case "k", "up":
		err = a.comp.ScrollBy(-a.opts.Step)
	case "pgdown", " ":
		err = a.comp.ScrollBy(win.Height() * 0.9)
	case "pgup":
		err = a.comp.ScrollBy(-win.Height() * 0.9)
	case "home":
		err = a.comp.ScrollTo(0)
	case "end":
		err = a.comp.ScrollTo(win.MaxScroll())
	case "1", "2", "3", "4":
		links := site.MustContent().Nav.Links
		if i := int(k[0] - '1'); i < len(links) {
			err = a.comp.Navigate(links[i].Target)
		}
	case "tab":
		err = a.cycleFocus()
	case "enter":
		if h := a.comp.Hovered(); h != nil {
			x, y := a.center(h)
			_, err = a.comp.Click(x, y)
		}
	case "esc":
		a.comp.PointerLeave()
		a.focus = -1
	case "t":
		a.theme = a.theme.Next()
		a.status = "theme " + a.theme.Name
	case "g":
		if a.rec == nil {
			a.rec = NewRecorder()
			a.status = "recording"
		} else {
			a.stopRecording()
		}
	case "?":
		a.showHelp = !a.showHelp
	}
	a.report(err)
	return nil
}

func (a *App) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, page.ErrNotReady):
		a.status = "still loading"
	default:
		a.status = err.Error()
	}
}

func (a *App) stopRecording() {
	if a.rec == nil {
		return
	}
	n := a.rec.Len()
	if err := a.rec.Save(a.opts.GIFPath, a.dt); err != nil {
		a.status = err.Error()
	} else {
		a.status = fmt.Sprintf("saved %d frames to %s", n, a.opts.GIFPath)
	}
	a.rec = nil
}

// cycleFocus moves the hover to the next zone, scrolling it into view.
func (a *App) cycleFocus() error {
	hovers := a.comp.Hovers()
	if len(hovers) == 0 {
		return page.ErrNotReady
	}
	a.focus = (a.focus + 1) % len(hovers)
	h := hovers[a.focus]
	win := a.comp.Env().Win
	if !win.Visible(h.Zone.Box) {
		if err := a.comp.ScrollTo(h.Zone.Box.Y - win.Height()/3); err != nil {
			return err
		}
	}
	a.comp.PointerMove(a.center(h))
	a.status = "focus " + h.Name
	return nil
}

// center is a hover zone's centre in viewport pixels.
func (a *App) center(h *section.Hover) (float64, float64) {
	b := h.Zone.Box
	return b.X + b.Width/2, b.Y + b.Height/2 - a.comp.Env().Win.ScrollY()
}

func (a *App) canvasSize() (int, int) {
	return max(a.width-panelWidth-3, 20), max(a.height-2, 8)
}

func (a *App) mouse(msg tea.MouseMsg) {
	cols, rows := a.canvasSize()
	g := a.last
	if g == nil || g.Cols != cols || g.Rows != rows {
		g = a.grid()
	}
	x, y := (float64(msg.X)+0.5)*g.CellW, (float64(msg.Y)+0.5)*g.CellH
	inside := msg.X < cols && msg.Y < rows

	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		a.report(a.comp.ScrollBy(a.opts.Step))
	case msg.Button == tea.MouseButtonWheelUp:
		a.report(a.comp.ScrollBy(-a.opts.Step))
	case msg.Action == tea.MouseActionMotion:
		if inside {
			a.comp.PointerMove(x, y)
		} else {
			a.comp.PointerLeave()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside:
		id, err := a.comp.Click(x, y)
		a.report(err)
		if id != "" {
			a.status = "→ " + id
		}
	}
}

func (a *App) grid() *Grid {
	cols, rows := a.canvasSize()
	var hot *dom.Node
	if h := a.comp.Hovered(); h != nil {
		hot = h.Zone
	}
	a.last = Rasterize(a.comp.Env().Win, cols, rows, hot)
	return a.last
}

func (a *App) View() string {
	if a.showHelp {
		return helpText
	}
	canvas := a.grid().Render(a.theme)
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, PanelStyle.Render(a.panel()))
}

func (a *App) panel() string {
	var s strings.Builder
	env := a.comp.Env()
	state := a.comp.State()

	title := GradientText(strings.ToUpper(site.MustContent().Brand)+" · "+a.opts.Name, a.theme.Primary, a.theme.Secondary)
	s.WriteString(headerStyle.Render(title) + "\n")

	if state != page.Ready {
		l := a.comp.Loading()
		p := 1.0
		if l != nil {
			p = l.Progress()
		}
		s.WriteString(MetricLabel.Render(state.String()) + ProgressBar(a.theme, p, 20) + "\n")
	} else {
		s.WriteString(MetricLabel.Render("state") + MetricValue.Render(state.String()) + "\n")
	}
	s.WriteString(MetricLabel.Render("time") + MetricValue.Render(fmt.Sprintf("%.2fs", a.runner.Time())) + "\n")
	s.WriteString(MetricLabel.Render("scroll") + MetricValue.Render(fmt.Sprintf("%.0f / %.0f", env.Win.ScrollY(), env.Win.MaxScroll())) + "\n")
	s.WriteString(MetricLabel.Render("viewport") + MetricValue.Render(fmt.Sprintf("%.0fx%.0f", env.Win.Width(), env.Win.Height())) + "\n")
	s.WriteString(MetricLabel.Render("tweens") + MetricValue.Render(fmt.Sprintf("%d", env.Loop.Active())) + "\n")
	s.WriteString(MetricLabel.Render("triggers") + MetricValue.Render(fmt.Sprintf("%d", env.Triggers.Count())) + "\n")
	s.WriteString(MetricLabel.Render("writes") + SparklineChart(a.activity[max(len(a.activity)-20, 0):], 20) + "\n")
	hover := "-"
	if h := a.comp.Hovered(); h != nil {
		hover = h.Name
	}
	s.WriteString(MetricLabel.Render("hover") + MetricValue.Render(hover) + "\n")
	if a.rec != nil {
		s.WriteString(StatusRecording.Render(fmt.Sprintf("● REC %d", a.rec.Len())) + "\n")
	}

	if len(a.progress) > 1 {
		chart := asciigraph.Plot(a.progress, asciigraph.Height(4), asciigraph.Width(panelWidth-10),
			asciigraph.LowerBound(0), asciigraph.UpperBound(1), asciigraph.Caption("scroll progress"))
		s.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\n" + Separator(panelWidth-4) + "\n")
	for _, e := range a.events {
		s.WriteString(eventStyle.Render(e) + "\n")
	}
	if a.status != "" {
		s.WriteString("\n" + Subtle.Render(a.status) + "\n")
	}
	s.WriteString(KeyHint.Render("\nj/k scroll  1-4 jump  tab hover\nt theme  g gif  ? help  q quit"))
	return s.String()
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  j/k ↑/↓  - Scroll one step          ║
║  PgUp/Dn  - Scroll one screen        ║
║  Home/End - Top / bottom             ║
║  1-4      - Jump to a section        ║
║  Tab      - Hover the next zone      ║
║  Enter    - Follow the hovered link  ║
║  Esc      - Clear hover              ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`

// Run opens the app full screen with mouse tracking.
func Run(opts Options) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
