package dom

import (
	"math"

	"github.com/san-kum/stride/internal/motion"
)

// Painted is a node as it lands in the viewport.
type Painted struct {
	Node *Node
	// Box is in viewport pixels, after offsets and scale about the centre.
	Box Box
	Effective
	// Text is what the node draws itself; hidden nodes draw none.
	Text string
}

// EdgeOn reports a face turned close to 90 degrees away from the viewer.
func (p Painted) EdgeOn() bool {
	return math.Abs(math.Cos(p.RotateX*math.Pi/180)) < 0.2 ||
		math.Abs(math.Cos(p.RotateY*math.Pi/180)) < 0.2
}

// Paint lists the mounted nodes that overlap the viewport, parents before
// children. Fully transparent subtrees are skipped.
func (w *Window) Paint() []Painted {
	var out []Painted
	w.paint(w.doc.Root, &out)
	return out
}

func (w *Window) paint(n *Node, out *[]Painted) {
	if !n.Mounted() {
		return
	}
	e := n.Effective()
	if e.Opacity <= 0 {
		return
	}
	width, height := n.Box.Width*e.Scale, n.Box.Height*e.Scale
	if n.Kind == KindBar {
		width *= e.Width
	}
	cx := n.Box.X + n.Box.Width/2 + e.X
	cy := n.Box.Y + n.Box.Height/2 + e.Y - w.scrollY
	box := Box{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
	if n.Kind == KindBar {
		box.X = n.Box.X + e.X
	}

	if box.Bottom() > 0 && box.Y < w.height {
		p := Painted{Node: n, Box: box, Effective: e}
		if !n.Hidden {
			p.Text = n.Text
		}
		*out = append(*out, p)
	}
	for _, c := range n.Children {
		w.paint(c, out)
	}
}

// Alpha is the opacity a renderer should draw with, blur included.
func (p Painted) Alpha() float64 {
	a := p.Opacity
	if p.Blur > 0 {
		a *= 1 / (1 + p.Blur/10)
	}
	return motion.Opacity.Clamp(a)
}
