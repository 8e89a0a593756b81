package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/gravbox/internal/body"
)

const (
	labelSize = 12
	hudSize   = 16
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	for _, b := range a.Universe.Bodies {
		drawBody(b)
	}
	a.drawHUD()

	rl.EndDrawing()
}

// drawBody draws a filled circle with a soft glow, a faint outline and the
// rounded mass.
func drawBody(b body.Body) {
	x, y, r := int32(b.X), int32(b.Y), float32(b.Radius)
	col := toColor(b.Color)

	rl.DrawCircle(x, y, r+4, rl.Fade(col, 0.15))
	rl.DrawCircle(x, y, r, col)
	rl.DrawCircleLines(x, y, r, ColOutline)
	label := b.Label()
	rl.DrawText(label, x-rl.MeasureText(label, labelSize)/2, y-labelSize/2, labelSize, ColLabel)
}

func (a *App) drawHUD() {
	u := a.Universe
	pause := "Pause"
	if u.Paused {
		pause = "Resume"
	}
	lines := []string{
		fmt.Sprintf("G %.3f", u.G),
		fmt.Sprintf("Mass %.0f", u.SpawnMass),
		fmt.Sprintf("Bodies %d", len(u.Bodies)),
		fmt.Sprintf("[Space] %s", pause),
	}
	for i, line := range lines {
		rl.DrawText(line, 12, int32(12+i*(hudSize+4)), hudSize, ColText)
	}

	hint := "click: spawn  up/down: gravity  left/right: mass  r: reset"
	rl.DrawText(hint, 12, a.Height-hudSize-8, hudSize, ColTextDim)

	if a.LastErr != "" {
		rl.DrawText(a.LastErr, 12, a.Height-2*hudSize-16, hudSize, ColError)
	}
}

// toColor converts a body color to raylib, falling back to white.
func toColor(c body.Color) rl.Color {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return rl.White
	}
	r, g, b := parsed.RGB255()
	return rl.NewColor(r, g, b, 255)
}
