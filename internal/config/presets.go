package config

import "sort"

// Preset is a named screen the page can be run at.
type Preset struct {
	Description string
	Viewport    ViewportConfig
}

var Presets = map[string]Preset{
	"desktop":  {"wide desktop, four product columns", ViewportConfig{Width: 1440, Height: 900}},
	"laptop":   {"small laptop, four columns", ViewportConfig{Width: 1280, Height: 720}},
	"tablet":   {"portrait tablet, two columns", ViewportConfig{Width: 820, Height: 1180}},
	"mobile":   {"phone, one column", ViewportConfig{Width: 390, Height: 844}},
	"terminal": {"sized for an 80x24 terminal", ViewportConfig{Width: 1200, Height: 720}},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
