// Package page composes the section controllers into the running page:
// the loading gate, page reveal, pointer dispatch and in-page navigation.
package page

import "fmt"

type State int

const (
	Loading State = iota
	Revealing
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Revealing:
		return "revealing"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Gate is the one-way loading state machine. Listeners run synchronously
// on every transition.
type Gate struct {
	state     State
	listeners []func(State)
}

func NewGate() *Gate { return &Gate{} }

func (g *Gate) State() State { return g.state }

func (g *Gate) OnChange(fn func(State)) {
	g.listeners = append(g.listeners, fn)
}

// Advance moves to the next state. It reports false once Ready.
func (g *Gate) Advance() bool {
	if g.state >= Ready {
		return false
	}
	g.state++
	for _, fn := range g.listeners {
		fn(g.state)
	}
	return true
}
