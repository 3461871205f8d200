package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stride/internal/config"
)

var (
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Menu picks a viewport preset, then hands over to the page app.
type Menu struct {
	presets       []string
	cursor        int
	base          Options
	app           *App
	width, height int
}

func NewMenu(base Options) *Menu {
	m := &Menu{presets: config.ListPresets(), base: base}
	for i, p := range m.presets {
		if p == base.Name {
			m.cursor = i
		}
	}
	return m
}

func (m *Menu) Init() tea.Cmd { return nil }

func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.app != nil {
		_, cmd := m.app.Update(msg)
		return m, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case "enter", " ":
			return m, m.start()
		}
	}
	return m, nil
}

func (m *Menu) start() tea.Cmd {
	name := m.presets[m.cursor]
	opts := m.base
	opts.Name = name
	if p := config.GetPreset(name); p != nil {
		opts.Setup.Width, opts.Setup.Height = p.Viewport.Width, p.Viewport.Height
	}
	m.app = NewApp(opts)
	if m.width > 0 {
		m.app.width, m.app.height = m.width, m.height
	}
	return m.app.Init()
}

func (m *Menu) View() string {
	if m.app != nil {
		return m.app.View()
	}
	var b strings.Builder
	b.WriteString("\n   " + cyan.Render("stride") + dim.Render("  choose a screen") + "\n\n")
	for i, name := range m.presets {
		p := config.GetPreset(name)
		size := fmt.Sprintf("%4.0fx%-4.0f", p.Viewport.Width, p.Viewport.Height)
		if i == m.cursor {
			b.WriteString("   " + cyan.Render("› "+fmt.Sprintf("%-9s", name)) + " " + white.Render(size) + "  " + dim.Render(p.Description) + "\n")
		} else {
			b.WriteString("     " + dim.Render(fmt.Sprintf("%-9s %s", name, size)) + "\n")
		}
	}
	b.WriteString("\n" + dim.Render("   ↑/↓ select  enter open  q quit") + "\n")
	return b.String()
}

// RunMenu opens the preset picker full screen.
func RunMenu(base Options) error {
	p := tea.NewProgram(NewMenu(base), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
