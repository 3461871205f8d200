package section

import (
	"errors"
	"fmt"
)

var ErrUnknownController = errors.New("section: unknown controller")

// Registry creates controllers by name. Names come back in page order:
// the loading screen first, then top to bottom.
type Registry struct {
	order     []string
	factories map[string]func() Controller
}

func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]func() Controller)}
	r.register("loading", func() Controller { return NewLoading() })
	r.register("navbar", func() Controller { return NewNavbar() })
	r.register("hero", func() Controller { return NewHero() })
	r.register("products", func() Controller { return NewProducts() })
	r.register("athletes", func() Controller { return NewAthletes() })
	r.register("technology", func() Controller { return NewTechnology() })
	r.register("footer", func() Controller { return NewFooter() })
	return r
}

func (r *Registry) register(name string, fn func() Controller) {
	r.order = append(r.order, name)
	r.factories[name] = fn
}

func (r *Registry) New(name string) (Controller, error) {
	fn, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownController, name)
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Sections lists the controllers mounted when the page reveals.
func (r *Registry) Sections() []string {
	return r.Names()[1:]
}
