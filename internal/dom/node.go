// Package dom is the page's render tree: positioned nodes with styleable
// properties, the document that indexes them, and the window that scrolls
// over them.
package dom

import (
	"github.com/san-kum/stride/internal/motion"
)

type Kind string

const (
	KindPage     Kind = "page"
	KindSection  Kind = "section"
	KindMedia    Kind = "media"
	KindOverlay  Kind = "overlay"
	KindHeading  Kind = "heading"
	KindText     Kind = "text"
	KindButton   Kind = "button"
	KindLink     Kind = "link"
	KindCard     Kind = "card"
	KindGroup    Kind = "group"
	KindParticle Kind = "particle"
	KindChar     Kind = "char"
	KindBar      Kind = "bar"
)

// Box is a layout rectangle in document pixels. Transforms applied through
// style properties never change it.
type Box struct {
	X, Y          float64
	Width, Height float64
}

func (b Box) Bottom() float64 { return b.Y + b.Height }

func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

type Node struct {
	ID       string
	Kind     Kind
	Text     string
	Href     string
	Src      string
	Box      Box
	Style    motion.Props
	Children []*Node
	Parent   *Node

	// Hidden marks a node whose own text is not drawn because its
	// characters were decomposed into children. Label keeps that text for
	// accessibility tooling.
	Hidden bool
	Label  string

	mounted   bool
	mutations int
}

func NewNode(id string, kind Kind, box Box) *Node {
	return &Node{ID: id, Kind: kind, Box: box, Style: motion.Props{}, mounted: true}
}

func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// Prop returns the current value of p, or its resting value when unset.
func (n *Node) Prop(p motion.Prop) float64 {
	if n == nil {
		return p.Rest()
	}
	if v, ok := n.Style[p]; ok {
		return v
	}
	return p.Rest()
}

func (n *Node) SetProp(p motion.Prop, v float64) {
	if n == nil || !n.mounted {
		return
	}
	n.Style[p] = p.Clamp(v)
	n.mutations++
}

func (n *Node) Mounted() bool { return n != nil && n.mounted }

// Bounds reports the layout top edge and height used by triggers.
func (n *Node) Bounds() (top, height float64) {
	if n == nil {
		return 0, 0
	}
	return n.Box.Y, n.Box.Height
}

// Mutations counts every property write since the node was created.
func (n *Node) Mutations() int {
	if n == nil {
		return 0
	}
	return n.mutations
}

// Unmount detaches the node and its subtree from rendering; later writes
// are dropped.
func (n *Node) Unmount() {
	n.Walk(func(c *Node) bool {
		c.mounted = false
		return true
	})
}

// Remount brings a subtree back, with its styles reset to rest.
func (n *Node) Remount() {
	n.Walk(func(c *Node) bool {
		c.mounted = true
		c.Style = motion.Props{}
		return true
	})
}

// Walk visits n and its descendants depth first until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// Effective is the node's composed transform after its ancestors'.
type Effective struct {
	X, Y     float64
	Scale    float64
	Opacity  float64
	Rotation float64
	RotateX  float64
	RotateY  float64
	Blur     float64
	Width    float64
}

// Effective composes offsets additively and scale and opacity
// multiplicatively up the parent chain.
func (n *Node) Effective() Effective {
	e := Effective{Scale: 1, Opacity: 1, Width: 1}
	for c := n; c != nil; c = c.Parent {
		e.X += c.Prop(motion.X)
		e.Y += c.Prop(motion.Y)
		e.Scale *= c.Prop(motion.Scale)
		e.Opacity *= c.Prop(motion.Opacity)
		e.Rotation += c.Prop(motion.Rotation)
		e.RotateX += c.Prop(motion.RotateX)
		e.RotateY += c.Prop(motion.RotateY)
		e.Blur += c.Prop(motion.Blur)
	}
	e.Width = n.Prop(motion.Width)
	return e
}

var _ motion.Target = (*Node)(nil)
