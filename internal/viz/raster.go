package viz

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/san-kum/stride/internal/dom"
)

// Cell is one character of the rasterised viewport.
type Cell struct {
	R     rune
	Alpha float64
	Kind  dom.Kind
	// Hot marks cells inside the zone under the pointer.
	Hot bool
}

// Grid is the viewport mapped onto Cols x Rows characters.
type Grid struct {
	Cols, Rows   int
	CellW, CellH float64
	Cells        [][]Cell
	dots         *Canvas
	dotAlpha     [][]float64
}

// faint is the alpha below which a cell reads as empty.
const faint = 0.12

// Rasterize draws the window's current paint list. hot, when not nil,
// highlights that node's box.
func Rasterize(win *dom.Window, cols, rows int, hot *dom.Node) *Grid {
	cols, rows = max(cols, 1), max(rows, 1)
	g := &Grid{
		Cols:     cols,
		Rows:     rows,
		CellW:    win.Width() / float64(cols),
		CellH:    win.Height() / float64(rows),
		Cells:    make([][]Cell, rows),
		dots:     NewCanvas(cols, rows),
		dotAlpha: make([][]float64, rows),
	}
	for r := range g.Cells {
		g.Cells[r] = make([]Cell, cols)
		g.dotAlpha[r] = make([]float64, cols)
	}

	var hotBox *dom.Box
	for _, p := range win.Paint() {
		if p.Node == hot {
			b := p.Box
			hotBox = &b
		}
		g.draw(p)
	}
	g.mergeDots()
	if hotBox != nil {
		c0, r0, c1, r1 := g.span(*hotBox)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				g.Cells[r][c].Hot = true
			}
		}
	}
	return g
}

// span converts a viewport box into an inclusive, clipped cell range.
func (g *Grid) span(b dom.Box) (c0, r0, c1, r1 int) {
	c0 = clamp(int(b.X/g.CellW), 0, g.Cols-1)
	r0 = clamp(int(b.Y/g.CellH), 0, g.Rows-1)
	c1 = clamp(int(math.Ceil((b.X+b.Width)/g.CellW))-1, 0, g.Cols-1)
	r1 = clamp(int(math.Ceil((b.Y+b.Height)/g.CellH))-1, 0, g.Rows-1)
	return c0, r0, max(c0, c1), max(r0, r1)
}

func (g *Grid) put(c, r int, ch rune, alpha float64, kind dom.Kind) {
	if c < 0 || r < 0 || c >= g.Cols || r >= g.Rows {
		return
	}
	g.Cells[r][c] = Cell{R: ch, Alpha: alpha, Kind: kind}
}

func (g *Grid) draw(p dom.Painted) {
	a := p.Alpha()
	switch p.Node.Kind {
	case dom.KindMedia:
		g.fill(p.Box, '░', a*0.5, p.Node.Kind)
	case dom.KindOverlay:
		g.dim(p.Box, a, len(p.Node.Children) > 0)
	case dom.KindCard:
		g.outline(p.Box, a)
	case dom.KindBar:
		g.fill(p.Box, '━', a, p.Node.Kind)
	case dom.KindParticle:
		c := (p.Box.X + p.Box.Width/2) / g.CellW
		r := (p.Box.Y + p.Box.Height/2) / g.CellH
		g.dots.Dot(c, r)
		if ci, ri := int(c), int(r); ri >= 0 && ri < g.Rows && ci >= 0 && ci < g.Cols {
			g.dotAlpha[ri][ci] = math.Max(g.dotAlpha[ri][ci], a)
		}
	}
	if p.Text != "" && !p.EdgeOn() {
		g.text(p, a)
	}
}

func (g *Grid) fill(b dom.Box, ch rune, alpha float64, kind dom.Kind) {
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	c0, r0, c1, r1 := g.span(b)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			g.put(c, r, ch, alpha, kind)
		}
	}
}

// dim fades what is already drawn under an overlay. A screen, an overlay
// with content of its own, hides it completely at full opacity.
func (g *Grid) dim(b dom.Box, alpha float64, screen bool) {
	k := 1 - alpha*0.5
	if screen {
		k = 1 - alpha
	}
	c0, r0, c1, r1 := g.span(b)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			g.Cells[r][c].Alpha *= k
			g.dotAlpha[r][c] *= k
		}
	}
}

func (g *Grid) outline(b dom.Box, alpha float64) {
	c0, r0, c1, r1 := g.span(b)
	for c := c0; c <= c1; c++ {
		g.put(c, r0, '─', alpha, dom.KindCard)
		g.put(c, r1, '─', alpha, dom.KindCard)
	}
	for r := r0; r <= r1; r++ {
		g.put(c0, r, '│', alpha, dom.KindCard)
		g.put(c1, r, '│', alpha, dom.KindCard)
	}
	g.put(c0, r0, '┌', alpha, dom.KindCard)
	g.put(c1, r0, '┐', alpha, dom.KindCard)
	g.put(c0, r1, '└', alpha, dom.KindCard)
	g.put(c1, r1, '┘', alpha, dom.KindCard)
}

func (g *Grid) text(p dom.Painted, alpha float64) {
	s := p.Text
	if p.Node.Kind == dom.KindButton {
		s = "[ " + s + " ]"
	}
	blurred := p.Blur > 3
	c0, r0, c1, r1 := g.span(p.Box)
	width := c1 - c0 + 1
	for i, line := range wrap(s, width) {
		r := r0 + i
		if r > r1 || r >= g.Rows {
			return
		}
		c := c0
		for _, ch := range line {
			if blurred && ch != ' ' {
				ch = '·'
			}
			if ch != ' ' {
				g.put(c, r, ch, alpha, p.Node.Kind)
			}
			c++
		}
	}
}

func (g *Grid) mergeDots() {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if ch := g.dots.At(c, r); ch != 0 && g.Cells[r][c].R == 0 {
				g.Cells[r][c] = Cell{R: ch, Alpha: g.dotAlpha[r][c], Kind: dom.KindParticle}
			}
		}
	}
}

// String is the grid without colour; cells too faint to see are blank.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.Cells {
		for _, cell := range row {
			b.WriteRune(cell.visible())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c Cell) visible() rune {
	if c.R == 0 || c.Alpha < faint {
		return ' '
	}
	return c.R
}

// wrap breaks s into lines of at most width runes, on spaces when it can.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for utf8.RuneCountInString(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				rs := []rune(word)
				lines = append(lines, string(rs[:width]))
				word = string(rs[width:])
			}
			switch {
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
