package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the palette used by the menu, stats panel and labels. Body
// colors come from the bodies themselves.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeNebula = Theme{
		Name:    "nebula",
		Primary: lipgloss.Color("#b388ff"),
		Accent:  lipgloss.Color("#ff80ab"),
		Text:    lipgloss.Color("#f3e5f5"),
		Muted:   lipgloss.Color("#6a5a8c"),
		Running: lipgloss.Color("#69f0ae"),
		Paused:  lipgloss.Color("#ffd740"),
		Error:   lipgloss.Color("#ff5252"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Primary: lipgloss.Color("#33ff33"),
		Accent:  lipgloss.Color("#99ff99"),
		Text:    lipgloss.Color("#33ff33"),
		Muted:   lipgloss.Color("#116611"),
		Running: lipgloss.Color("#99ff99"),
		Paused:  lipgloss.Color("#ffff33"),
		Error:   lipgloss.Color("#ff3333"),
	}

	ThemeDeepSpace = Theme{
		Name:    "deepspace",
		Primary: lipgloss.Color("#4fc3f7"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e1f5fe"),
		Muted:   lipgloss.Color("#37577a"),
		Running: lipgloss.Color("#00e676"),
		Paused:  lipgloss.Color("#ffab00"),
		Error:   lipgloss.Color("#ff1744"),
	}

	CurrentTheme = ThemeNebula

	Themes = []Theme{ThemeNebula, ThemePhosphor, ThemeDeepSpace}
)

// ThemeNames lists the selectable theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// GetTheme looks a theme up by name.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// SetTheme makes the named theme current. Unknown names leave it unchanged.
func SetTheme(name string) bool {
	t, ok := GetTheme(name)
	if ok {
		CurrentTheme = t
	}
	return ok
}

// NextTheme cycles to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}
