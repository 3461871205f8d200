// Package timeline builds deterministic, replayable sequences of property
// transitions and drives them from a frame.Loop.
//
// A discrete Timeline plays forward once per trigger crossing and can be
// reversed in time back to its initial state. A Scrub has no play state:
// its values are a pure function of the progress fraction it is handed.
// Yoyo is the cancellable repeating task used for ambient motion.
package timeline

import (
	"math"
	"reflect"
	"sort"

	"github.com/san-kum/stride/internal/ease"
	"github.com/san-kum/stride/internal/frame"
	"github.com/san-kum/stride/internal/motion"
)

// Step is one property transition. Delay is measured from timeline start,
// not from the previous step.
type Step struct {
	Target   motion.Target
	From     motion.Props
	To       motion.Props
	Duration float64
	Delay    float64
	Ease     ease.Func
	Label    string
}

// StepInfo describes a built step without exposing its target.
type StepInfo struct {
	Label    string
	Props    []motion.Prop
	Delay    float64
	Duration float64
}

type direction int

const (
	idle direction = iota
	forward
	backward
)

type track struct {
	Step
	applied float64
}

// local maps the playhead to the step's progress. A step is complete once
// the playhead reaches its end, whatever rounding the division would give.
// Running backward, a zero-length step undoes as soon as the playhead is
// back at its delay.
func (tr *track) local(head float64, backward bool) float64 {
	end := tr.Delay + tr.Duration
	switch {
	case tr.Duration == 0 && backward:
		if head > tr.Delay {
			return 1
		}
		return 0
	case head >= end:
		return 1
	case head <= tr.Delay:
		return 0
	}
	return (head - tr.Delay) / tr.Duration
}

func (tr *track) apply(p float64) {
	if p == tr.applied {
		return
	}
	tr.applied = p
	if !tr.Target.Mounted() {
		return
	}
	e := tr.Ease(p)
	for k, a := range tr.From {
		tr.Target.SetProp(k, a+(tr.To[k]-a)*e)
	}
}

type options struct {
	immediate bool
	label     string
}

type Option func(*options)

// WithoutImmediateRender leaves targets untouched until the first frame.
// Tweens that start from current values use it.
func WithoutImmediateRender() Option {
	return func(o *options) { o.immediate = false }
}

func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

type Timeline struct {
	loop              *frame.Loop
	label             string
	tracks            []*track
	total             float64
	head              float64
	dir               direction
	sub               *frame.Subscription
	cancelled         bool
	detach            []func()
	onComplete        func()
	onReverseComplete func()
}

// Build validates steps and returns a discrete timeline. Steps whose target
// is missing are dropped; the remaining steps are ordered by delay, keeping
// registration order among equal delays. Unless WithoutImmediateRender is
// given, every target is set to its From values right away.
func Build(loop *frame.Loop, steps []Step, opts ...Option) (*Timeline, error) {
	o := options{immediate: true}
	for _, opt := range opts {
		opt(&o)
	}

	tracks, err := prepare(steps)
	if err != nil {
		return nil, err
	}

	tl := &Timeline{loop: loop, label: o.label, tracks: tracks}
	for _, tr := range tracks {
		tl.total = math.Max(tl.total, tr.Delay+tr.Duration)
	}

	if o.immediate {
		for i := len(tracks) - 1; i >= 0; i-- {
			tr := tracks[i]
			tr.applied = math.NaN()
			tr.apply(0)
		}
	}
	return tl, nil
}

func prepare(steps []Step) ([]*track, error) {
	tracks := make([]*track, 0, len(steps))
	for i, s := range steps {
		if err := validate(s); err != nil {
			return nil, &motion.StepError{Step: i, Label: s.Label, Wrapped: err}
		}
		if isNil(s.Target) {
			continue
		}
		if s.Ease == nil {
			s.Ease = ease.Linear
		}
		tracks = append(tracks, &track{Step: s, applied: math.NaN()})
	}
	sort.SliceStable(tracks, func(i, j int) bool { return tracks[i].Delay < tracks[j].Delay })
	return tracks, nil
}

func validate(s Step) error {
	if len(s.From) == 0 || len(s.To) == 0 {
		return motion.ErrEmptyProps
	}
	if !s.From.SameKeys(s.To) {
		return motion.ErrPropMismatch
	}
	for k := range s.From {
		if !k.Valid() {
			return motion.ErrUnknownProp
		}
	}
	if s.Duration < 0 {
		return motion.ErrNegativeDuration
	}
	if s.Delay < 0 {
		return motion.ErrNegativeDelay
	}
	return nil
}

func isNil(t motion.Target) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Play runs the timeline forward from its current position. Calling it
// while already playing forward, or after finishing forward, does nothing.
func (t *Timeline) Play() {
	if t == nil || t.cancelled || t.dir == forward {
		return
	}
	t.dir = forward
	t.ensureRunning()
}

// Reverse runs the timeline backward toward its initial state using the
// same per-step durations and curves.
func (t *Timeline) Reverse() {
	if t == nil || t.cancelled || t.dir == backward {
		return
	}
	t.dir = backward
	t.ensureRunning()
}

// Seek jumps the playhead to at seconds and renders immediately.
func (t *Timeline) Seek(at float64) {
	if t == nil || t.cancelled {
		return
	}
	at = math.Max(0, math.Min(at, t.total))
	prev := t.dir
	if at < t.head {
		t.dir = backward
	} else {
		t.dir = forward
	}
	t.head = at
	t.render()
	t.dir = prev
}

// Cancel halts interpolation and detaches every bound trigger. A cancelled
// timeline never writes to its targets again.
func (t *Timeline) Cancel() {
	if t == nil || t.cancelled {
		return
	}
	t.cancelled = true
	t.sub.Cancel()
	t.sub = nil
	detach := t.detach
	t.detach = nil
	for _, fn := range detach {
		fn()
	}
}

// Bind records a detach function that Cancel runs, typically the
// unregister of the trigger driving this timeline.
func (t *Timeline) Bind(detach func()) {
	if t == nil || detach == nil {
		return
	}
	if t.cancelled {
		detach()
		return
	}
	t.detach = append(t.detach, detach)
}

func (t *Timeline) OnComplete(fn func())        { t.onComplete = fn }
func (t *Timeline) OnReverseComplete(fn func()) { t.onReverseComplete = fn }

func (t *Timeline) ensureRunning() {
	if t.sub.Active() {
		return
	}
	t.sub = t.loop.Subscribe(t.tick)
}

func (t *Timeline) tick(dt float64) {
	if t.cancelled {
		return
	}
	switch t.dir {
	case forward:
		t.head = math.Min(t.head+dt, t.total)
	case backward:
		t.head = math.Max(t.head-dt, 0)
	}
	t.render()

	switch {
	case t.dir == forward && t.head >= t.total:
		t.stop()
		if t.onComplete != nil {
			t.onComplete()
		}
	case t.dir == backward && t.head <= 0:
		t.stop()
		if t.onReverseComplete != nil {
			t.onReverseComplete()
		}
	}
}

func (t *Timeline) stop() {
	t.sub.Cancel()
	t.sub = nil
}

// render writes every step whose local progress moved. When running
// backward, later steps are written first so earlier steps win on shared
// properties.
func (t *Timeline) render() {
	n := len(t.tracks)
	for i := 0; i < n; i++ {
		idx := i
		if t.dir == backward {
			idx = n - 1 - i
		}
		tr := t.tracks[idx]
		tr.apply(tr.local(t.head, t.dir == backward))
	}
}

func (t *Timeline) Label() string { return t.label }

func (t *Timeline) Duration() float64 { return t.total }

func (t *Timeline) Head() float64 { return t.head }

// Progress returns the playhead as a fraction of the timeline duration.
func (t *Timeline) Progress() float64 {
	if t.total == 0 {
		if t.dir == forward && !t.sub.Active() {
			return 1
		}
		return 0
	}
	return t.head / t.total
}

// Playing reports whether the timeline is advancing forward this frame.
func (t *Timeline) Playing() bool {
	return t != nil && t.dir == forward && t.sub.Active()
}

// Reversed reports whether the timeline is advancing backward this frame.
func (t *Timeline) Reversed() bool {
	return t != nil && t.dir == backward && t.sub.Active()
}

func (t *Timeline) Cancelled() bool { return t == nil || t.cancelled }

func (t *Timeline) Steps() []StepInfo {
	return infos(t.tracks)
}

func infos(tracks []*track) []StepInfo {
	out := make([]StepInfo, len(tracks))
	for i, tr := range tracks {
		out[i] = StepInfo{
			Label:    tr.Label,
			Props:    tr.From.Keys(),
			Delay:    tr.Delay,
			Duration: tr.Duration,
		}
	}
	return out
}
