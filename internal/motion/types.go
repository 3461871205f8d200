package motion

import (
	"fmt"
	"sort"
	"strings"
)

type Prop string

const (
	X        Prop = "x"
	Y        Prop = "y"
	Scale    Prop = "scale"
	Rotation Prop = "rotation"
	RotateX  Prop = "rotateX"
	RotateY  Prop = "rotateY"
	Opacity  Prop = "opacity"
	Blur     Prop = "blur"
	Width    Prop = "width"
)

// AllProps lists every known property in a stable order.
var AllProps = []Prop{X, Y, Scale, Rotation, RotateX, RotateY, Opacity, Blur, Width}

// Rest returns the value a property has on an element nobody animated.
func (p Prop) Rest() float64 {
	switch p {
	case Scale, Opacity, Width:
		return 1
	default:
		return 0
	}
}

// Clamp bounds fractional properties to [0,1]; other properties pass through.
func (p Prop) Clamp(v float64) float64 {
	switch p {
	case Opacity, Width:
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
	}
	return v
}

func (p Prop) Valid() bool {
	for _, k := range AllProps {
		if k == p {
			return true
		}
	}
	return false
}

type Props map[Prop]float64

func (p Props) Clone() Props {
	c := make(Props, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

func (p Props) Keys() []Prop {
	keys := make([]Prop, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// SameKeys reports whether both sets name exactly the same properties.
func (p Props) SameKeys(other Props) bool {
	if len(p) != len(other) {
		return false
	}
	for k := range p {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// Lerp interpolates every property of p toward to by t. Properties missing
// from to are copied unchanged.
func (p Props) Lerp(to Props, t float64) Props {
	out := make(Props, len(p))
	for k, a := range p {
		b, ok := to[k]
		if !ok {
			out[k] = a
			continue
		}
		out[k] = a + (b-a)*t
	}
	return out
}

func (p Props) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range p.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%g", k, p[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

// Target is a renderable node with styleable properties. Timelines must not
// write to a target that reports Mounted() == false.
type Target interface {
	Prop(p Prop) float64
	SetProp(p Prop, v float64)
	Mounted() bool
}

// Snapshot reads the listed properties from a target.
func Snapshot(t Target, keys []Prop) Props {
	out := make(Props, len(keys))
	for _, k := range keys {
		out[k] = t.Prop(k)
	}
	return out
}

// Canceller is implemented by every resource a section scope releases on
// teardown: timelines, scrubs, tweens and repeating tasks.
type Canceller interface {
	Cancel()
}
