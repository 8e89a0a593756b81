package physics

import (
	"math"

	"github.com/san-kum/gravbox/internal/body"
)

// Force returns the pull of p2 on p1. Separation is floored at the sum of
// the radii so overlapping or coincident bodies never see an unbounded force.
func Force(p1, p2 *body.Body, g float64) (fx, fy float64) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	dist := math.Max(math.Hypot(dx, dy), p1.Radius+p2.Radius)
	if dist == 0 {
		return 0, 0
	}
	force := g * p1.Mass * p2.Mass / (dist * dist)
	angle := math.Atan2(dy, dx)
	return math.Cos(angle) * force, math.Sin(angle) * force
}

// Attract applies one unit timestep of p2's pull to p1's velocity.
// p2 is not modified.
func Attract(p1, p2 *body.Body, g float64) {
	fx, fy := Force(p1, p2, g)
	if fx == 0 && fy == 0 {
		return
	}
	p1.VX += fx / p1.Mass
	p1.VY += fy / p1.Mass
}

// Accumulate attracts every body towards every other one, once per ordered
// pair. Cost is O(n^2).
func Accumulate(bodies []body.Body, g float64) {
	for i := range bodies {
		for j := range bodies {
			if i != j {
				Attract(&bodies[i], &bodies[j], g)
			}
		}
	}
}
