package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}

	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 0, "#ff0000")

	if c.Grid[2][5] == blank {
		t.Error("radius 0 circle should set its centre")
	}
	if c.Colors[2][5] != "#ff0000" {
		t.Errorf("expected cell colored, got %q", c.Colors[2][5])
	}

	c.Clear()
	c.FillCircle(10, 10, 3, "")
	set := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != blank {
				set++
			}
		}
	}
	if set < 4 {
		t.Errorf("expected a filled disc over several cells, got %d cells", set)
	}
}

func TestCanvasLabel(t *testing.T) {
	c := NewCanvas(6, 2)
	c.Label(4, 1, "123", "#ffffff")

	if string(c.Grid[1][4:]) != "12" {
		t.Errorf("expected clipped label, got %q", string(c.Grid[1][4:]))
	}

	c.Set(8, 4)
	if c.Grid[1][4] != '1' {
		t.Error("dots must not overwrite label text")
	}

	c.Label(0, 5, "x", "")
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Label(0, 0, "ab", "")

	lines := strings.Split(strings.TrimRight(c.Plain(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(c.String(), "ab") {
		t.Error("styled render lost label text")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(2, 1)
	c.DrawLine(0, 0, 3, 0, "#ffffff")

	if got := c.Plain(); got != "⠉⠉\n" {
		t.Errorf("Plain() = %q, want %q", got, "⠉⠉\n")
	}
	if c.Colors[0][1] != "#ffffff" {
		t.Errorf("expected line color in cell 1, got %q", c.Colors[0][1])
	}
}
