// Package gui draws the page in a raylib window at one page pixel per
// screen pixel.
package gui

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/stride/internal/page"
	"github.com/san-kum/stride/internal/sim"
	"github.com/san-kum/stride/internal/site"
	"github.com/san-kum/stride/internal/trigger"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(255, 107, 0, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(90, 90, 90, 255)
	ColMedia   = rl.NewColor(38, 38, 38, 255)
	ColCard    = rl.NewColor(70, 70, 70, 255)
)

const (
	fontPath        = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	historyCapacity = 200
	eventCapacity   = 6
)

type Options struct {
	Name  string
	Setup sim.Setup
	FPS   int
	Step  float64
}

type App struct {
	opts   Options
	runner *sim.Runner
	comp   *page.Composer
	Font   rl.Font

	// Telemetry holds recent scroll progress for the HUD graph.
	Telemetry []float64
	events    []string
	status    string
	ShowHUD   bool
}

func initWindow(w, h, fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w), int32(h), "stride")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont falls back to raylib's built-in face when the system font is
// missing.
func loadFont() rl.Font {
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(opts Options) *App {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Step <= 0 {
		opts.Step = 120
	}
	r := sim.New(opts.Setup)
	r.Start()
	return &App{
		opts:      opts,
		runner:    r,
		comp:      r.Composer(),
		Font:      loadFont(),
		Telemetry: make([]float64, 0, historyCapacity),
		ShowHUD:   true,
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) {
	initWindow(int(opts.Setup.Width), int(opts.Setup.Height), opts.FPS)
	defer rl.CloseWindow()
	app := NewApp(opts)
	defer app.runner.Close()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and advances the page by the frame time. It
// returns false once the user quits.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}

	if rl.IsWindowResized() {
		a.comp.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	win := a.comp.Env().Win
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.report(a.comp.ScrollBy(-float64(wheel) * a.opts.Step))
	}

	switch {
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ):
		a.report(a.comp.ScrollBy(a.opts.Step))
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK):
		a.report(a.comp.ScrollBy(-a.opts.Step))
	case rl.IsKeyPressed(rl.KeyPageDown) || rl.IsKeyPressed(rl.KeySpace):
		a.report(a.comp.ScrollBy(win.Height() * 0.9))
	case rl.IsKeyPressed(rl.KeyPageUp):
		a.report(a.comp.ScrollBy(-win.Height() * 0.9))
	case rl.IsKeyPressed(rl.KeyHome):
		a.report(a.comp.ScrollTo(0))
	case rl.IsKeyPressed(rl.KeyEnd):
		a.report(a.comp.ScrollTo(win.MaxScroll()))
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHUD = !a.ShowHUD
	}

	links := site.MustContent().Nav.Links
	for i, k := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour} {
		if i < len(links) && rl.IsKeyPressed(k) {
			a.report(a.comp.Navigate(links[i].Target))
		}
	}

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	if x >= 0 && y >= 0 && x < win.Width() && y < win.Height() {
		a.comp.PointerMove(x, y)
	} else {
		a.comp.PointerLeave()
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		id, err := a.comp.Click(x, y)
		a.report(err)
		if id != "" {
			a.status = "-> " + id
		}
	}

	a.advance(float64(rl.GetFrameTime()))
	return true
}

func (a *App) advance(dt float64) {
	if dt <= 0 {
		dt = 1 / float64(a.opts.FPS)
	}
	f := a.runner.Step(dt)
	for _, e := range f.Events {
		if e.Kind == trigger.EventProgress {
			continue
		}
		a.events = append(a.events, fmt.Sprintf("%6.2fs %s %s", f.Time, e.Kind, e.Name))
		if len(a.events) > eventCapacity {
			a.events = a.events[1:]
		}
	}

	p := 0.0
	if m := f.Win.MaxScroll(); m > 0 {
		p = f.ScrollY / m
	}
	a.Telemetry = append(a.Telemetry, p)
	if len(a.Telemetry) > historyCapacity {
		a.Telemetry = a.Telemetry[1:]
	}
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

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	hot := a.comp.Hovered()
	for _, p := range a.comp.Env().Win.Paint() {
		a.drawPainted(p, hot != nil && p.Node == hot.Zone)
	}
	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	rl.DrawRectangle(int32(w-300), 0, 300, int32(h), rl.NewColor(0, 0, 0, 170))

	x := w - 280
	a.drawText("stride", x, 20, 24, ColSelect)
	a.drawText(":: "+a.opts.Name, x+100, 24, 16, ColText)

	state := a.comp.State()
	a.drawText(state.String(), x, 60, 16, ColAccent)
	if state != page.Ready {
		if l := a.comp.Loading(); l != nil {
			rl.DrawRectangle(int32(x), 84, 200, 4, ColTextDim)
			rl.DrawRectangle(int32(x), 84, int32(200*l.Progress()), 4, ColAccent)
		}
	}

	env := a.comp.Env()
	hover := "-"
	if hv := a.comp.Hovered(); hv != nil {
		hover = hv.Name
	}
	rows := []string{
		fmt.Sprintf("time     %.2fs", a.runner.Time()),
		fmt.Sprintf("scroll   %.0f / %.0f", env.Win.ScrollY(), env.Win.MaxScroll()),
		fmt.Sprintf("tweens   %d", env.Loop.Active()),
		fmt.Sprintf("triggers %d", env.Triggers.Count()),
		fmt.Sprintf("hover    %s", hover),
	}
	for i, r := range rows {
		a.drawText(r, x, 100+i*20, 14, ColText)
	}

	a.DrawTelemetry(x, 220, 240, 50)

	for i, e := range a.events {
		a.drawText(e, x, 300+i*18, 12, ColTextDim)
	}
	if a.status != "" {
		a.drawText(a.status, x, h-80, 14, ColText)
	}
	a.drawText("WHEEL SCROLL  1-4 JUMP  H HUD  Q QUIT", x, h-40, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), x, h-20, 12, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots scroll progress, which is already normalised to [0, 1].
func (a *App) DrawTelemetry(rectX, rectY, width, height int) {
	if len(a.Telemetry) < 2 {
		return
	}
	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		py := float32(rectY+height) - float32(val)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("%3.0f%%", a.Telemetry[len(a.Telemetry)-1]*100), rectX+width+6, rectY+height-10, 12, ColText)
}
