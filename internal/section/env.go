// Package section holds the page's section controllers. A controller
// captures element references on Mount, wires its timelines to triggers
// and the frame loop, and releases everything on Unmount through a Scope.
package section

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/san-kum/stride/internal/dom"
	"github.com/san-kum/stride/internal/frame"
	"github.com/san-kum/stride/internal/trigger"
)

// Env is the shared world a controller mounts into.
type Env struct {
	Doc      *dom.Document
	Win      *dom.Window
	Loop     *frame.Loop
	Triggers *trigger.Registry
	Rand     *rand.Rand
	Log      *slog.Logger
}

// NewEnv wires a window and trigger registry over doc. A nil logger
// discards output.
func NewEnv(doc *dom.Document, width, height float64, seed int64, log *slog.Logger, opts ...trigger.Option) *Env {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	win := dom.NewWindow(doc, width, height)
	return &Env{
		Doc:      doc,
		Win:      win,
		Loop:     frame.NewLoop(),
		Triggers: trigger.NewRegistry(win, opts...),
		Rand:     rand.New(rand.NewSource(seed)),
		Log:      log,
	}
}

// Ref resolves an element, logging at debug level when it is missing.
func (e *Env) Ref(section, id string) *dom.Node {
	n := e.Doc.Ref(id)
	if n == nil {
		e.Log.Debug("missing reference", "section", section, "id", id)
	}
	return n
}

// Between returns a uniform random value in [lo, hi).
func (e *Env) Between(lo, hi float64) float64 {
	return lo + e.Rand.Float64()*(hi-lo)
}
