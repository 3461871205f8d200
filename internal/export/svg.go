// Package export writes page frames and recorded tracks as SVG.
package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/stride/internal/dom"
)

// Palette holds the colours FrameSVG draws with.
type Palette struct {
	Background string
	Text       string
	Accent     string
	Muted      string
}

var DefaultPalette = Palette{Background: "#0a0a0a", Text: "#ffffff", Accent: "#ff6b00", Muted: "#333333"}

// FrameSVG draws the window's viewport in the default palette.
func FrameSVG(doc *dom.Document, win *dom.Window) string {
	return FrameSVGPalette(doc, win, DefaultPalette)
}

// FrameSVGPalette draws every painted node with its effective transform
// and opacity. Media and overlays are rectangles, cards are outlines and
// particles dots; text is set in a monospace face.
func FrameSVGPalette(doc *dom.Document, win *dom.Window, pal Palette) string {
	w, h := win.Width(), win.Height()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, pal.Background))

	if doc != nil {
		sb.WriteString(fmt.Sprintf("<!-- %s scroll=%.0f -->\n", doc.Root.ID, win.ScrollY()))
	}

	for _, p := range win.Paint() {
		node(&sb, p, pal)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func node(sb *strings.Builder, p dom.Painted, pal Palette) {
	b := p.Box
	a := p.Alpha()
	cx, cy := b.X+b.Width/2, b.Y+b.Height/2
	transform := ""
	if p.Rotation != 0 {
		transform = fmt.Sprintf(` transform="rotate(%.1f %.1f %.1f)"`, p.Rotation, cx, cy)
	}

	switch p.Node.Kind {
	case dom.KindMedia:
		sb.WriteString(fmt.Sprintf(`<rect id="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" opacity="%.3f"%s/>
`, p.Node.ID, b.X, b.Y, b.Width, b.Height, pal.Muted, a, transform))
	case dom.KindOverlay:
		sb.WriteString(fmt.Sprintf(`<rect id="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" opacity="%.3f"/>
`, p.Node.ID, b.X, b.Y, b.Width, b.Height, pal.Background, a*0.6))
	case dom.KindCard:
		sb.WriteString(fmt.Sprintf(`<rect id="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="none" stroke="%s" opacity="%.3f"%s/>
`, p.Node.ID, b.X, b.Y, b.Width, b.Height, pal.Muted, a, transform))
	case dom.KindBar:
		sb.WriteString(fmt.Sprintf(`<rect id="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" opacity="%.3f"/>
`, p.Node.ID, b.X, b.Y, b.Width, math.Max(b.Height, 2), pal.Accent, a))
	case dom.KindParticle:
		sb.WriteString(fmt.Sprintf(`<circle id="%s" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" opacity="%.3f"/>
`, p.Node.ID, cx, cy, math.Max(b.Width/2, 2), pal.Accent, a))
	}

	if p.Text == "" || p.EdgeOn() {
		return
	}
	fill := pal.Text
	if p.Node.Kind == dom.KindButton || p.Node.Kind == dom.KindLink {
		fill = pal.Accent
	}
	size := 16.0
	if p.Node.Kind == dom.KindHeading {
		size = math.Min(b.Height*0.8, 64)
	}
	filter := ""
	if p.Blur > 0 {
		filter = fmt.Sprintf(` style="filter:blur(%.1fpx)"`, p.Blur)
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" fill="%s" opacity="%.3f"%s%s>%s</text>
`, b.X, b.Y+size, size, fill, a, transform, filter, html.EscapeString(p.Text)))
}

// TrackSVG plots a recorded value over time.
func TrackSVG(times, values []float64, width, height int, strokeColor string) string {
	type point struct{ X, Y float64 }
	var points []point
	for i := range times {
		if i < len(values) && !math.IsNaN(values[i]) {
			points = append(points, point{times[i], values[i]})
		}
	}
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
