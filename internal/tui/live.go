// Package tui prints the page to a plain ANSI terminal as a run goes.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/stride/internal/sim"
	"github.com/san-kum/stride/internal/trigger"
	"github.com/san-kum/stride/internal/viz"
)

const (
	width       = 96
	height      = 28
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	reset       = "\033[0m"
)

// LiveRenderer draws frames in greyscale as a runner observer. Frames
// closer together than the frame rate allows are dropped; Realtime makes
// it sleep so a headless run plays back at wall-clock speed.
type LiveRenderer struct {
	out       io.Writer
	name      string
	frameRate int
	Realtime  bool
	lastFrame time.Time
	lastTime  float64
	events    []string
}

func NewLiveRenderer(out io.Writer, name string, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{out: out, name: name, frameRate: frameRate}
}

func (r *LiveRenderer) OnFrame(f sim.Frame) {
	for _, e := range f.Events {
		if e.Kind != trigger.EventProgress {
			r.events = append(r.events, fmt.Sprintf("%6.2fs %s %s", f.Time, e.Kind, e.Name))
		}
	}
	if len(r.events) > 3 {
		r.events = r.events[len(r.events)-3:]
	}

	if r.Realtime {
		if wait := time.Duration((f.Time - r.lastTime) * float64(time.Second)); wait > 0 {
			time.Sleep(wait)
		}
		r.lastTime = f.Time
	}
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	r.render(f)
}

func (r *LiveRenderer) render(f sim.Frame) {
	g := viz.Rasterize(f.Win, width, height, nil)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  t=%.2fs  %s  scroll=%.0f\n", r.name, f.Time, f.State, f.ScrollY))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range g.Cells {
		b.WriteString("  ")
		for _, cell := range row {
			b.WriteString(shade(cell))
		}
		b.WriteString(reset + "\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	for _, e := range r.events {
		b.WriteString("  " + e + "\n")
	}

	fmt.Fprint(r.out, b.String())
}

// shade renders a cell in one of the 24 greys of the 256-colour palette.
func shade(c viz.Cell) string {
	if c.R == 0 || c.Alpha < 0.12 {
		return " "
	}
	level := 232 + int(c.Alpha*23+0.5)
	return fmt.Sprintf("\033[38;5;%dm%c", level, c.R)
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, reset+showCursor) }
