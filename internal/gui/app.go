package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravbox/internal/control"
	"github.com/san-kum/gravbox/internal/sim"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColLabel   = rl.NewColor(255, 255, 255, 255)
	ColOutline = rl.NewColor(255, 255, 255, 34) // #fff2
	ColError   = rl.NewColor(255, 68, 68, 255)
)

type App struct {
	Universe *sim.Universe
	Surface  *control.Surface
	Name     string
	Width    int32
	Height   int32
	FPS      int32
	LastErr  string
}

func NewApp(u *sim.Universe, name string, width, height, fps int) *App {
	return &App{
		Universe: u,
		Surface:  control.NewSurface(),
		Name:     name,
		Width:    int32(width),
		Height:   int32(height),
		FPS:      int32(fps),
	}
}

// Run opens a window sized to the world and blocks until it is closed.
func Run(u *sim.Universe, name string, width, height, fps int) {
	app := NewApp(u, name, width, height, fps)
	rl.InitWindow(app.Width, app.Height, "gravbox - "+name)
	rl.SetTargetFPS(app.FPS)
	rl.SetExitKey(0)
	defer rl.CloseWindow()
	app.RunLoop()
}

// RunLoop is the per-frame task: input, one Frame, then draw.
func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	in := pollInput()
	if !in.Empty() {
		a.LastErr = ""
		if err := a.Surface.Apply(a.Universe, in); err != nil {
			a.LastErr = err.Error()
		}
	}
	a.Universe.Frame()
}

func pollInput() control.Input {
	in := control.Input{
		TogglePause: rl.IsKeyPressed(rl.KeySpace),
		Reset:       rl.IsKeyPressed(rl.KeyR),
		GravityUp:   rl.IsKeyPressed(rl.KeyUp),
		GravityDown: rl.IsKeyPressed(rl.KeyDown),
		MassUp:      rl.IsKeyPressed(rl.KeyRight),
		MassDown:    rl.IsKeyPressed(rl.KeyLeft),
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		in.Spawn, in.SpawnX, in.SpawnY = true, float64(pos.X), float64(pos.Y)
	}
	return in
}
