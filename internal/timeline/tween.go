package timeline

import (
	"github.com/san-kum/stride/internal/ease"
	"github.com/san-kum/stride/internal/frame"
	"github.com/san-kum/stride/internal/motion"
)

// To starts a single-step timeline from the target's current values toward
// to. A missing target yields a nil timeline, whose methods are no-ops.
func To(loop *frame.Loop, target motion.Target, to motion.Props, duration float64, curve ease.Func) (*Timeline, error) {
	if isNil(target) {
		return nil, nil
	}
	from := motion.Snapshot(target, to.Keys())
	tl, err := Build(loop, []Step{{
		Target:   target,
		From:     from,
		To:       to,
		Duration: duration,
		Ease:     curve,
	}}, WithoutImmediateRender())
	if err != nil {
		return nil, err
	}
	tl.Play()
	return tl, nil
}

// Stagger returns n delays starting at base and spaced by interval.
func Stagger(base, interval float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = base + float64(i)*interval
	}
	return out
}
