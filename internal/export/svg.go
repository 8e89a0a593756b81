package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/sim"
)

const background = "#0a0a0a"

type Point struct{ X, Y float64 }

// Track is a sim.Observer that records the center of mass after every tick.
type Track struct {
	Points []Point
}

func (t *Track) OnTick(_ int, bodies []body.Body, _ []physics.MergeEvent) {
	if len(bodies) == 0 {
		return
	}
	s := sim.ComputeStats(bodies)
	t.Points = append(t.Points, Point{s.CX, s.CY})
}

// BodiesToSVG draws bodies in world coordinates on a width x height
// picture, each as a disc in its own color with its mass label. A track
// with at least two points is drawn underneath as a polyline.
func BodiesToSVG(bodies []body.Body, width, height int, track []Point) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	if len(track) > 1 {
		sb.WriteString(`<path fill="none" stroke="#555555" stroke-width="1" d="M`)
		for i, p := range track {
			if i > 0 {
				sb.WriteString(" L")
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		}
		sb.WriteString("\"/>\n")
	}

	for _, b := range bodies {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="#ffffff" stroke-opacity="0.13"/>
`, b.X, b.Y, b.Radius, b.Color))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#ffffff" font-size="12" font-family="monospace" text-anchor="middle" dominant-baseline="middle">%s</text>
`, b.X, b.Y, b.Label()))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes BodiesToSVG output to w.
func WriteSVG(w io.Writer, bodies []body.Body, width, height int, track []Point) error {
	_, err := io.WriteString(w, BodiesToSVG(bodies, width, height, track))
	return err
}
