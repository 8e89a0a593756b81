package viz

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/control"
	"github.com/san-kum/gravbox/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600

	// Canvas offset inside the terminal, from canvasStyle padding.
	canvasLeft = 2
	canvasTop  = 1

	listedBodies = 8

	// Velocity vectors show where a body would be this many ticks ahead.
	vectorTicks = 20
)

// TickMsg steps the model whose generation matches Gen. Ticks scheduled by
// a model that has since been replaced are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// Model renders a universe into a braille canvas and turns keys and mouse
// clicks into control-surface calls.
type Model struct {
	universe       *sim.Universe
	surface        *control.Surface
	name           string
	canvas         *Canvas
	worldW, worldH float64
	fps            int
	rng            *rand.Rand
	energyHistory  []float64
	showHelp       bool
	showVectors    bool
	lastErr        string
	gen            int
}

// NewModel wraps u. worldW and worldH are the world extent mapped onto the
// canvas; seed drives keyboard spawns at random positions.
func NewModel(u *sim.Universe, name string, worldW, worldH float64, fps int, seed int64) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		universe:      u,
		surface:       control.NewSurface(),
		name:          name,
		canvas:        NewCanvas(width, height),
		worldW:        worldW,
		worldH:        worldH,
		fps:           fps,
		rng:           rand.New(rand.NewSource(seed)),
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg{Gen: gen, Time: t} })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.lastErr = ""
		var in control.Input
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			in.TogglePause = true
		case "r":
			in.Reset = true
			m.energyHistory = m.energyHistory[:0]
		case "+", "=":
			in.GravityUp = true
		case "-", "_":
			in.GravityDown = true
		case "]":
			in.MassUp = true
		case "[":
			in.MassDown = true
		case "n":
			in.Spawn, in.SpawnX, in.SpawnY = true, m.rng.Float64()*m.worldW, m.rng.Float64()*m.worldH
		case "t":
			NextTheme()
		case "v":
			m.showVectors = !m.showVectors
		case "?":
			m.showHelp = !m.showHelp
		}
		m.apply(in)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if x, y, ok := m.cellToWorld(msg.X-canvasLeft, msg.Y-canvasTop); ok {
				m.apply(control.Input{Spawn: true, SpawnX: x, SpawnY: y})
			}
		}
	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if m.universe.Frame() {
			m.energyHistory = append(m.energyHistory, m.universe.Stats().KineticEnergy)
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) apply(in control.Input) {
	if in.Empty() {
		return
	}
	if err := m.surface.Apply(m.universe, in); err != nil {
		m.lastErr = err.Error()
	}
}

// scale maps world units to canvas dots, keeping the aspect ratio and
// centring the world.
func (m *Model) scale() (s, offX, offY float64) {
	cw, ch := float64(m.canvas.SubWidth()), float64(m.canvas.SubHeight())
	s = math.Min(cw/m.worldW, ch/m.worldH)
	offX = (cw - m.worldW*s) / 2
	offY = (ch - m.worldH*s) / 2
	return s, offX, offY
}

func (m *Model) worldToDot(x, y float64) (int, int) {
	s, offX, offY := m.scale()
	return int(math.Round(x*s + offX)), int(math.Round(y*s + offY))
}

// cellToWorld maps a canvas cell to the world point under its centre.
func (m *Model) cellToWorld(col, row int) (float64, float64, bool) {
	if col < 0 || row < 0 || col >= m.canvas.Width || row >= m.canvas.Height {
		return 0, 0, false
	}
	s, offX, offY := m.scale()
	px, py := float64(col*2)+1, float64(row*4)+2
	return (px - offX) / s, (py - offY) / s, true
}

// draw renders every body as a filled disc with its mass label.
func (m *Model) draw() {
	m.canvas.Clear()
	s, _, _ := m.scale()
	for _, b := range m.universe.Bodies {
		cx, cy := m.worldToDot(b.X, b.Y)
		r := int(math.Round(b.Radius * s))
		m.canvas.FillCircle(cx, cy, r, string(b.Color))
	}
	if m.showVectors {
		for _, b := range m.universe.Bodies {
			x0, y0 := m.worldToDot(b.X, b.Y)
			x1, y1 := m.worldToDot(b.X+b.VX*vectorTicks, b.Y+b.VY*vectorTicks)
			m.canvas.DrawLine(x0, y0, x1, y1, string(CurrentTheme.Accent))
		}
	}
	for _, b := range m.universe.Bodies {
		cx, cy := m.worldToDot(b.X, b.Y)
		r := int(math.Round(b.Radius * s))
		m.canvas.Label((cx+r)/2+1, cy/4, b.Label(), string(CurrentTheme.Text))
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	u := m.universe
	st := u.Stats()
	label, value := labelStyle(), valueStyle()

	var s strings.Builder
	s.WriteString(headerStyle().Render(strings.ToUpper(m.name)) + "\n")
	s.WriteString(StatusBadge(u.Paused) + "\n\n")
	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	s.WriteString(label.Render("Gravity") + value.Render(fmt.Sprintf("%.3f", u.G)) + "\n")
	s.WriteString(label.Render("Spawn mass") + value.Render(fmt.Sprintf("%.0f", u.SpawnMass)) + "\n")
	s.WriteString(label.Render("Bodies") + value.Render(fmt.Sprintf("%d", st.Count)) + "\n")
	s.WriteString(label.Render("Total mass") + value.Render(fmt.Sprintf("%.1f", st.TotalMass)) + "\n")
	s.WriteString(label.Render("Momentum") + value.Render(fmt.Sprintf("%.3f", math.Hypot(st.PX, st.PY))) + "\n")
	s.WriteString(label.Render("Tick") + value.Render(fmt.Sprintf("%d", u.TickCount())) + "\n")

	s.WriteString("\n" + Separator(30) + "\n")
	for _, b := range heaviest(u.Bodies, listedBodies) {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(string(b.Color))).Render("●")
		s.WriteString(fmt.Sprintf("%s %6s  (%.0f, %.0f)\n", dot, b.Label(), b.X, b.Y))
	}
	if len(u.Bodies) > listedBodies {
		s.WriteString(hintStyle().Render(fmt.Sprintf("  +%d more", len(u.Bodies)-listedBodies)) + "\n")
	}

	if m.lastErr != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(CurrentTheme.Error).Render(m.lastErr) + "\n")
	}
	if m.showHelp {
		s.WriteString("\n" + helpView())
	}
	s.WriteString("\n" + KeyHints("SP", "pause", "click", "spawn", "?", "help", "q", "quit"))

	// Help stays in the stats column so the canvas never moves and mouse
	// rows keep mapping through canvasTop.
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

var helpKeys = [][2]string{
	{"space", "pause / resume"},
	{"click", "spawn a body"},
	{"n", "spawn at random"},
	{"+ / -", "gravity x1.1 / /1.1"},
	{"] / [", "spawn mass +10 / -10"},
	{"r", "reset universe"},
	{"v", "velocity vectors"},
	{"t", "cycle themes"},
	{"esc", "back to menu"},
	{"q", "quit"},
}

func helpView() string {
	var b strings.Builder
	b.WriteString(headerStyle().Render("KEYS") + "\n")
	for _, k := range helpKeys {
		b.WriteString(keyStyle().Render(fmt.Sprintf("%-7s", k[0])) + hintStyle().Render(k[1]) + "\n")
	}
	return b.String()
}

func heaviest(bodies []body.Body, n int) []body.Body {
	sorted := append([]body.Body(nil), bodies...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Mass > sorted[j].Mass })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// RunLive starts the live view directly, without the preset menu.
func RunLive(u *sim.Universe, name string, worldW, worldH float64, fps int, seed int64) error {
	_, err := tea.NewProgram(NewModel(u, name, worldW, worldH, fps, seed), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
