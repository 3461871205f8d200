package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/stride/internal/dom"
)

func fade(c rl.Color, alpha float64) rl.Color {
	return rl.Fade(c, float32(alpha))
}

func rect(b dom.Box) rl.Rectangle {
	return rl.NewRectangle(float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height))
}

// drawPainted draws one node. Rotated boxes pivot on their centre, and
// 3D flips are approximated by squashing the box along the flipped axis.
func (a *App) drawPainted(p dom.Painted, hot bool) {
	if p.EdgeOn() {
		return
	}
	b := p.Box
	sx := math.Abs(math.Cos(p.RotateY * math.Pi / 180))
	sy := math.Abs(math.Cos(p.RotateX * math.Pi / 180))
	if sx < 1 || sy < 1 {
		cx, cy := b.X+b.Width/2, b.Y+b.Height/2
		b.Width *= sx
		b.Height *= sy
		b.X, b.Y = cx-b.Width/2, cy-b.Height/2
	}
	alpha := p.Alpha()

	switch p.Node.Kind {
	case dom.KindMedia:
		a.drawBox(b, p.Rotation, fade(ColMedia, alpha))
	case dom.KindOverlay:
		a.drawBox(b, p.Rotation, fade(ColBg, alpha*0.85))
	case dom.KindCard:
		col := ColCard
		if hot {
			col = ColAccent
		}
		rl.DrawRectangleLinesEx(rect(b), 2, fade(col, alpha))
	case dom.KindBar:
		rl.DrawRectangleRec(rect(b), fade(ColAccent, alpha))
	case dom.KindParticle:
		r := math.Max(b.Width/2, 2)
		rl.DrawCircleV(rl.NewVector2(float32(b.X+b.Width/2), float32(b.Y+b.Height/2)), float32(r), fade(ColAccent, alpha))
	}

	if p.Text == "" {
		return
	}
	col := ColText
	size := 18.0
	switch p.Node.Kind {
	case dom.KindHeading, dom.KindChar:
		col = ColSelect
		size = math.Min(math.Max(b.Height*0.8, 18), 96)
	case dom.KindButton, dom.KindLink:
		col = ColAccent
		if hot {
			col = ColSelect
		}
	}
	pos := rl.NewVector2(float32(b.X), float32(b.Y))
	rl.DrawTextPro(a.Font, p.Text, pos, rl.NewVector2(0, 0), float32(p.Rotation), float32(size), 1, fade(col, alpha))
}

func (a *App) drawBox(b dom.Box, rotation float64, c rl.Color) {
	if rotation == 0 {
		rl.DrawRectangleRec(rect(b), c)
		return
	}
	r := rl.NewRectangle(float32(b.X+b.Width/2), float32(b.Y+b.Height/2), float32(b.Width), float32(b.Height))
	rl.DrawRectanglePro(r, rl.NewVector2(float32(b.Width/2), float32(b.Height/2)), float32(rotation), c)
}
