package viz

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/sim"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	src := rand.New(rand.NewSource(1))
	u, err := sim.New(cfg.SimConfig(src), src)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(u, "sun", float64(cfg.Width), float64(cfg.Height), cfg.FPS, 1)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_PauseKey(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key(" "))
	if !m.universe.Paused {
		t.Fatal("space should pause")
	}

	before := m.universe.Snapshot()
	m = update(m, TickMsg{})
	if m.universe.TickCount() != 0 || m.universe.Bodies[0] != before[0] {
		t.Error("paused tick advanced the universe")
	}

	m = update(m, key(" "))
	m = update(m, TickMsg{})
	if m.universe.TickCount() != 1 {
		t.Errorf("expected 1 tick after resume, got %d", m.universe.TickCount())
	}
	if len(m.energyHistory) != 1 {
		t.Errorf("expected 1 energy sample, got %d", len(m.energyHistory))
	}
}

func TestModel_ParameterKeys(t *testing.T) {
	m := newTestModel(t)

	m = update(m, key("+"))
	if math.Abs(m.universe.G-1.1) > 1e-12 {
		t.Errorf("expected G 1.1, got %v", m.universe.G)
	}
	m = update(m, key("-"))
	if math.Abs(m.universe.G-1) > 1e-12 {
		t.Errorf("expected G 1, got %v", m.universe.G)
	}

	m = update(m, key("]"))
	if m.universe.SpawnMass != 80 {
		t.Errorf("expected spawn mass 80, got %v", m.universe.SpawnMass)
	}
	for i := 0; i < 10; i++ {
		m = update(m, key("["))
	}
	if m.universe.SpawnMass != 10 {
		t.Errorf("spawn mass should stop at 10, got %v", m.universe.SpawnMass)
	}
	if m.lastErr == "" {
		t.Error("expected an error message for a non-positive spawn mass")
	}
}

func TestModel_MouseSpawn(t *testing.T) {
	m := newTestModel(t)
	m = update(m, tea.MouseMsg{X: canvasLeft + 40, Y: canvasTop + 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if len(m.universe.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(m.universe.Bodies))
	}
	b := m.universe.Bodies[1]
	if b.Mass != config.DefaultSpawnMass {
		t.Errorf("expected spawn mass, got %v", b.Mass)
	}
	// Cell (40, 12) is the middle of the canvas, which shows the middle of the world.
	if math.Abs(b.X-400) > 15 || math.Abs(b.Y-300) > 15 {
		t.Errorf("expected spawn near (400, 300), got (%v, %v)", b.X, b.Y)
	}

	m = update(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(m, tea.MouseMsg{X: 30, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if len(m.universe.Bodies) != 2 {
		t.Errorf("clicks outside the canvas or releases must not spawn, got %d bodies", len(m.universe.Bodies))
	}
}

func TestModel_ResetKey(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key("n"))
	m = update(m, TickMsg{})
	m = update(m, key("r"))

	if len(m.universe.Bodies) != 1 || m.universe.TickCount() != 0 {
		t.Errorf("reset failed: %d bodies, tick %d", len(m.universe.Bodies), m.universe.TickCount())
	}
	if len(m.energyHistory) != 0 {
		t.Error("reset should clear history")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"SUN", "RUNNING", "70", "Gravity"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_DrawsBodies(t *testing.T) {
	m := newTestModel(t)
	m.universe.Bodies = []body.Body{{X: 400, Y: 300, Mass: 5, Radius: 8, Color: "#ff0000"}}
	m.draw()

	cx, cy := m.worldToDot(400, 300)
	if m.canvas.Grid[cy/4][cx/2] == blank {
		t.Error("body centre not drawn")
	}
}

func TestInteractiveApp_StartsPreset(t *testing.T) {
	app := NewInteractiveApp(PresetEntries(), 7)
	next, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := next.(model)

	if m.state != stateSim {
		t.Fatal("enter should start the selected preset")
	}
	if cmd == nil {
		t.Error("expected tick command")
	}
	if m.liveModel.name != m.entries[0].Name {
		t.Errorf("expected %s, got %s", m.entries[0].Name, m.liveModel.name)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(model).state != stateMenu {
		t.Error("esc should return to the menu")
	}
}

func TestInteractiveApp_InvalidEntry(t *testing.T) {
	bad := config.DefaultConfig()
	bad.SpawnMass = 0
	app := NewInteractiveApp([]Entry{{Name: "bad", Config: bad}}, 1)

	next, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := next.(model)
	if m.state != stateMenu || m.err == "" {
		t.Error("invalid config should stay in menu with an error")
	}
}

func TestModel_VectorToggle(t *testing.T) {
	m := newTestModel(t)
	m.universe.Bodies[0].VX = 5
	m = update(m, key("v"))
	if !m.showVectors {
		t.Fatal("v should enable velocity vectors")
	}

	withVectors := m.canvasDots()
	m = update(m, key("v"))
	if withVectors <= m.canvasDots() {
		t.Error("velocity vector should add dots to the canvas")
	}
}

func (m Model) canvasDots() int {
	m.draw()
	n := 0
	for _, row := range m.canvas.Grid {
		for _, r := range row {
			if r > blank && r < blank+0x100 {
				n += bits(int(r - blank))
			}
		}
	}
	return n
}

func bits(v int) int {
	n := 0
	for ; v != 0; v &= v - 1 {
		n++
	}
	return n
}

func TestThemes(t *testing.T) {
	defer SetTheme(CurrentTheme.Name)

	if SetTheme("no-such-theme") {
		t.Error("unknown theme should be rejected")
	}
	for _, name := range ThemeNames() {
		if !SetTheme(name) || CurrentTheme.Name != name {
			t.Errorf("SetTheme(%q) did not apply", name)
		}
	}

	SetTheme(Themes[len(Themes)-1].Name)
	NextTheme()
	if CurrentTheme.Name != Themes[0].Name {
		t.Errorf("NextTheme should wrap to %q, got %q", Themes[0].Name, CurrentTheme.Name)
	}
}

func TestModel_HelpKeepsCanvasInPlace(t *testing.T) {
	m := newTestModel(t)
	before := strings.Split(m.View(), "\n")

	m = update(m, key("?"))
	if !m.showHelp {
		t.Fatal("? should show help")
	}
	view := m.View()
	if !strings.Contains(view, "KEYS") || !strings.Contains(view, "velocity vectors") {
		t.Error("help not rendered")
	}
	after := strings.Split(view, "\n")
	if len(after) < len(before) || before[0] != after[0] {
		t.Error("help must not push the canvas down")
	}

	m = update(m, tea.MouseMsg{X: canvasLeft + 40, Y: canvasTop + 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(m.universe.Bodies) != 2 {
		t.Fatalf("click on the canvas with help open should spawn, got %d bodies", len(m.universe.Bodies))
	}
	b := m.universe.Bodies[1]
	if math.Abs(b.X-400) > 15 || math.Abs(b.Y-300) > 15 {
		t.Errorf("expected spawn near (400, 300), got (%v, %v)", b.X, b.Y)
	}
}

func TestInteractiveApp_DropsStaleTicks(t *testing.T) {
	app := NewInteractiveApp(PresetEntries(), 7)
	next, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := next.(model)
	first := m.liveModel.gen

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next, _ = next.(model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if m.liveModel.gen == first {
		t.Fatal("re-entering a preset should start a new tick generation")
	}

	next, cmd := m.Update(TickMsg{Gen: first})
	m = next.(model)
	if cmd != nil || m.liveModel.universe.TickCount() != 0 {
		t.Error("tick from the previous live view must be dropped")
	}

	next, cmd = m.Update(TickMsg{Gen: m.liveModel.gen})
	m = next.(model)
	if cmd == nil || m.liveModel.universe.TickCount() != 1 {
		t.Errorf("current tick should step once and reschedule, tick=%d", m.liveModel.universe.TickCount())
	}
}
