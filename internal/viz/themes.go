package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stride/internal/dom"
)

// Theme is a colourway: the page's text and accents drawn over a ground.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

var (
	ThemeNight = Theme{
		Name:       "night",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#ff6b00"),
		Accent:     lipgloss.Color("#ff6b00"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#e8e8e8"),
		Muted:      lipgloss.Color("#555555"),
	}

	ThemeVolt = Theme{
		Name:       "volt",
		Primary:    lipgloss.Color("#ceff00"),
		Secondary:  lipgloss.Color("#9fd600"),
		Accent:     lipgloss.Color("#f4f4f4"),
		Background: lipgloss.Color("#0d1100"),
		Text:       lipgloss.Color("#e6ffb3"),
		Muted:      lipgloss.Color("#4d5c1f"),
	}

	ThemeInfrared = Theme{
		Name:       "infrared",
		Primary:    lipgloss.Color("#ff3b5c"),
		Secondary:  lipgloss.Color("#ff7a8f"),
		Accent:     lipgloss.Color("#f2f2f2"),
		Background: lipgloss.Color("#141414"),
		Text:       lipgloss.Color("#f0e6e8"),
		Muted:      lipgloss.Color("#5e3a41"),
	}

	ThemeRoyal = Theme{
		Name:       "royal",
		Primary:    lipgloss.Color("#3d6bff"),
		Secondary:  lipgloss.Color("#8fa9ff"),
		Accent:     lipgloss.Color("#ffd23f"),
		Background: lipgloss.Color("#060b1f"),
		Text:       lipgloss.Color("#dfe6ff"),
		Muted:      lipgloss.Color("#33406b"),
	}

	ThemeCement = Theme{
		Name:       "cement",
		Primary:    lipgloss.Color("#1b1b1b"),
		Secondary:  lipgloss.Color("#d2232a"),
		Accent:     lipgloss.Color("#d2232a"),
		Background: lipgloss.Color("#e9e7e2"),
		Text:       lipgloss.Color("#2a2a2a"),
		Muted:      lipgloss.Color("#a9a59c"),
	}

	Themes = []Theme{ThemeNight, ThemeVolt, ThemeInfrared, ThemeRoyal, ThemeCement}
)

// GetTheme returns a theme by name, or the first theme for an unknown name.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNight
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Base is the full-opacity colour a kind of node draws in.
func (t Theme) Base(kind dom.Kind) lipgloss.Color {
	switch kind {
	case dom.KindHeading, dom.KindChar:
		return t.Primary
	case dom.KindButton, dom.KindLink, dom.KindParticle:
		return t.Accent
	case dom.KindBar:
		return t.Secondary
	case dom.KindMedia, dom.KindCard:
		return t.Muted
	}
	return t.Text
}

// alphaSteps quantises opacity so neighbouring cells share styles.
const alphaSteps = 8

// Shade blends a kind's base colour towards the background by opacity.
func (t Theme) Shade(kind dom.Kind, alpha float64, hot bool) lipgloss.Color {
	base := t.Base(kind)
	if hot {
		base = t.Accent
	}
	q := math.Round(math.Max(0, math.Min(1, alpha))*alphaSteps) / alphaSteps
	return blend(t.Background, base, q)
}

func blend(from, to lipgloss.Color, k float64) lipgloss.Color {
	fr, fg, fb := parseHex(string(from))
	tr, tg, tb := parseHex(string(to))
	mix := func(a, b int) int { return int(math.Round(float64(a) + k*float64(b-a))) }
	return lipgloss.Color(hexColor(mix(fr, tr), mix(fg, tg), mix(fb, tb)))
}
