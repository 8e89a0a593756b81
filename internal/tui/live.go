package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/physics"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints bodies as ASCII discs after each tick, throttled to a
// frame rate. It is a sim.Observer for headless runs.
type LiveRenderer struct {
	out            io.Writer
	worldW, worldH float64
	frameRate      int
	lastFrame      time.Time
	canvas         [][]rune
	merges         int
}

func NewLiveRenderer(out io.Writer, worldW, worldH float64, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		out:       out,
		worldW:    worldW,
		worldH:    worldH,
		frameRate: frameRate,
		canvas:    canvas,
	}
}

func (r *LiveRenderer) OnTick(tick int, bodies []body.Body, merges []physics.MergeEvent) {
	r.merges += len(merges)
	if r.frameRate > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()

	r.clear()
	for _, b := range bodies {
		r.drawBody(b)
	}
	r.render(tick, len(bodies))
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

// drawBody maps world coordinates onto the character grid. Cells are about
// twice as tall as wide, so x is scaled by 2 relative to y.
func (r *LiveRenderer) drawBody(b body.Body) {
	sx := float64(width) / r.worldW
	sy := float64(height) / r.worldH
	cx := int(b.X * sx)
	cy := int(b.Y * sy)
	rx := int(math.Round(b.Radius * sx))
	ry := int(math.Round(b.Radius * sy))

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx, ny := float64(dx)/math.Max(float64(rx), 1), float64(dy)/math.Max(float64(ry), 1)
			if nx*nx+ny*ny <= 1 {
				r.set(cx+dx, cy+dy, 'o')
			}
		}
	}
	r.set(cx, cy, 'O')
	for i, c := range b.Label() {
		r.set(cx+rx+1+i, cy, c)
	}
}

func (r *LiveRenderer) render(tick, count int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  tick=%d  bodies=%d  merges=%d\n", tick, count, r.merges))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
