package section

import (
	"github.com/san-kum/stride/internal/site"
)

const (
	vw  = 1440.0
	vh  = 900.0
	fps = 60.0
)

func newTestEnv() *Env {
	doc := site.Build(site.MustContent(), vw, vh)
	return NewEnv(doc, vw, vh, 7, nil)
}

// run advances the frame loop by seconds at a fixed rate.
func run(env *Env, seconds float64) {
	frames := int(seconds*fps + 0.5)
	for i := 0; i < frames; i++ {
		env.Loop.Advance(1 / fps)
	}
}
