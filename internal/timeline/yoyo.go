package timeline

import (
	"math"

	"github.com/san-kum/stride/internal/ease"
	"github.com/san-kum/stride/internal/frame"
	"github.com/san-kum/stride/internal/motion"
)

// Yoyo oscillates a target back and forth around the values it had when
// the oscillation began. Each leg (out or back) takes period seconds. It
// never finishes on its own; the owner must Cancel it.
type Yoyo struct {
	target    motion.Target
	amplitude motion.Props
	base      motion.Props
	period    float64
	delay     float64
	curve     ease.Func
	elapsed   float64
	sub       *frame.Subscription
}

func StartYoyo(loop *frame.Loop, target motion.Target, amplitude motion.Props, period, delay float64, curve ease.Func) *Yoyo {
	if isNil(target) || len(amplitude) == 0 {
		return nil
	}
	if period <= 0 {
		period = 1
	}
	if curve == nil {
		curve = ease.SineInOut
	}
	y := &Yoyo{
		target:    target,
		amplitude: amplitude.Clone(),
		period:    period,
		delay:     math.Max(0, delay),
		curve:     curve,
	}
	y.sub = loop.Subscribe(y.tick)
	return y
}

func (y *Yoyo) tick(dt float64) {
	y.elapsed += dt
	if y.elapsed < y.delay || !y.target.Mounted() {
		return
	}
	if y.base == nil {
		y.base = motion.Snapshot(y.target, y.amplitude.Keys())
	}
	legs := (y.elapsed - y.delay) / y.period
	cycle := math.Floor(legs)
	frac := legs - cycle
	if int64(cycle)%2 == 1 {
		frac = 1 - frac
	}
	e := y.curve(frac)
	for k, a := range y.amplitude {
		y.target.SetProp(k, y.base[k]+a*e)
	}
}

func (y *Yoyo) Cancel() {
	if y == nil {
		return
	}
	y.sub.Cancel()
}

func (y *Yoyo) Running() bool {
	return y != nil && y.sub.Active()
}
