package section

import (
	"fmt"
	"unicode"

	"github.com/san-kum/stride/internal/dom"
)

// nbsp keeps a space's width once the space is its own node.
const nbsp = "\u00a0"

// CharCell is one character of a decomposed title.
type CharCell struct {
	Index       int
	Rune        rune
	Display     string
	Placeholder bool
	Delay       float64
}

// SplitChars breaks text into cells whose delays follow base+index*stagger.
// Whitespace becomes a placeholder cell that still takes part in the
// stagger.
func SplitChars(text string, base, stagger float64) []CharCell {
	cells := make([]CharCell, 0, len(text))
	i := 0
	for _, r := range text {
		c := CharCell{Index: i, Rune: r, Display: string(r), Delay: base + float64(i)*stagger}
		if unicode.IsSpace(r) {
			c.Display = nbsp
			c.Placeholder = true
		}
		cells = append(cells, c)
		i++
	}
	return cells
}

func charID(parent string, i int) string { return fmt.Sprintf("%s-char-%d", parent, i) }

// Decompose materialises cells as character nodes under parent, laid out
// left to right across its box. The parent keeps its undecorated text in
// Label and stops drawing it. The returned restore undoes the split.
func Decompose(doc *dom.Document, parent *dom.Node, cells []CharCell) ([]*dom.Node, func()) {
	if parent == nil || len(cells) == 0 {
		return nil, func() {}
	}
	prevChildren := parent.Children
	prevHidden, prevLabel := parent.Hidden, parent.Label

	w := parent.Box.Width / float64(len(cells))
	nodes := make([]*dom.Node, len(cells))
	for i, c := range cells {
		n := dom.NewNode(charID(parent.ID, c.Index), dom.KindChar, dom.Box{
			X:      parent.Box.X + float64(i)*w,
			Y:      parent.Box.Y,
			Width:  w,
			Height: parent.Box.Height,
		})
		n.Text = c.Display
		nodes[i] = n
	}
	parent.Append(nodes...)
	parent.Hidden = true
	parent.Label = parent.Text
	doc.Reindex()

	return nodes, func() {
		parent.Children = prevChildren
		parent.Hidden, parent.Label = prevHidden, prevLabel
		for _, n := range nodes {
			n.Unmount()
		}
		doc.Reindex()
	}
}
