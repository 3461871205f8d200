package timeline

import "github.com/san-kum/stride/internal/motion"

type fakeTarget struct {
	props   motion.Props
	mounted bool
	writes  int
}

func newFake() *fakeTarget {
	return &fakeTarget{props: motion.Props{}, mounted: true}
}

func (f *fakeTarget) Prop(p motion.Prop) float64 {
	if v, ok := f.props[p]; ok {
		return v
	}
	return p.Rest()
}

func (f *fakeTarget) SetProp(p motion.Prop, v float64) {
	f.writes++
	f.props[p] = v
}

func (f *fakeTarget) Mounted() bool { return f.mounted }
