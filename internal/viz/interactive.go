package viz

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/sim"
)

var presetInfo = map[string]string{
	"sun":       "one gold star, click to add",
	"binary":    "two stars circling",
	"cluster":   "cold cloud collapsing",
	"collision": "head-on merger",
}

// Entry is one selectable universe in the menu.
type Entry struct {
	Name        string
	Description string
	Config      *config.Config
}

// PresetEntries lists the built-in presets in name order.
func PresetEntries() []Entry {
	names := config.ListPresets()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Description: presetInfo[name], Config: config.GetPreset(name)})
	}
	return entries
}

const (
	stateMenu = iota
	stateSim
)

type model struct {
	state, cursor int
	entries       []Entry
	seed          int64
	err           string
	liveModel     Model
	gen           int
}

func NewInteractiveApp(entries []Entry, seed int64) *model {
	return &model{state: stateMenu, entries: entries, seed: seed}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateSim {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			m.state = stateMenu
			return m, nil
		}
		newLive, cmd := m.liveModel.Update(msg)
		m.liveModel = newLive.(Model)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.entries) == 0 {
			return m, nil
		}
		cmd, err := m.start(m.entries[m.cursor])
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		return m, cmd
	}
	return m, nil
}

func (m *model) start(e Entry) (tea.Cmd, error) {
	cfg := e.Config
	seed := m.seed
	if cfg.Seed != 0 {
		seed = cfg.Seed
	}
	src := rand.New(rand.NewSource(seed))
	u, err := sim.New(cfg.SimConfig(src), src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	m.gen++
	m.liveModel = NewModel(u, e.Name, float64(cfg.Width), float64(cfg.Height), cfg.FPS, seed)
	m.liveModel.gen = m.gen
	m.state = stateSim
	return m.liveModel.Init(), nil
}

func (m model) View() string {
	if m.state == stateSim {
		return m.liveModel.View()
	}
	return m.viewMenu()
}

func (m model) viewMenu() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Bold(true)
	sub := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
	b.WriteString("\n\n    " + h.Render("GRAVBOX") + "\n    " + sub.Render("2d gravity toy") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, e := range m.entries {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(CurrentTheme.Text).Bold(true).Render(fmt.Sprintf("%-12s", e.Name)),
				lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(e.Description)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", sub.Render(fmt.Sprintf("  %-12s", e.Name)), sub.Render(e.Description)))
		}
	}
	if m.err != "" {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(CurrentTheme.Error).Render(m.err) + "\n")
	}
	b.WriteString("\n    " + KeyHints("j/k", "navigate", "enter", "select", "esc", "menu", "q", "quit") + "\n")
	return b.String()
}

func RunInteractive(entries []Entry, seed int64) error {
	_, err := tea.NewProgram(NewInteractiveApp(entries, seed), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
