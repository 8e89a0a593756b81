package physics

import (
	"math"

	"github.com/san-kum/gravbox/internal/body"
)

// MergeEvent records one merge of bodies I and J (indices into the input of
// Collide) into Result.
type MergeEvent struct {
	I, J   int
	Result body.Body
}

// Overlaps reports whether the centers are closer than the sum of the radii.
func Overlaps(a, b *body.Body) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) < a.Radius+b.Radius
}

// Merge combines two bodies, conserving mass and momentum. The result sits at
// the mass-weighted centroid, keeps p1's color, and its area is roughly the
// sum of both areas.
func Merge(p1, p2 *body.Body) body.Body {
	total := p1.Mass + p2.Mass
	return body.Body{
		X:      (p1.X*p1.Mass + p2.X*p2.Mass) / total,
		Y:      (p1.Y*p1.Mass + p2.Y*p2.Mass) / total,
		VX:     (p1.VX*p1.Mass + p2.VX*p2.Mass) / total,
		VY:     (p1.VY*p1.Mass + p2.VY*p2.Mass) / total,
		Mass:   total,
		Radius: math.Max(body.MinRadius, math.Sqrt(p1.Radius*p1.Radius+p2.Radius*p2.Radius)),
		Color:  p1.Color,
	}
}

// Collide runs one greedy merge pass over bodies and returns the next
// generation. Each body i pairs with the first unconsumed j > i it overlaps,
// not the nearest one, and takes part in at most one merge per pass.
// The input slice is left untouched.
func Collide(bodies []body.Body) ([]body.Body, []MergeEvent) {
	survivors := make([]body.Body, 0, len(bodies))
	consumed := make([]bool, len(bodies))
	var merges []MergeEvent

	for i := range bodies {
		if consumed[i] {
			continue
		}
		p1 := &bodies[i]

		for j := i + 1; j < len(bodies); j++ {
			if consumed[j] {
				continue
			}
			p2 := &bodies[j]
			if Overlaps(p1, p2) {
				merged := Merge(p1, p2)
				survivors = append(survivors, merged)
				merges = append(merges, MergeEvent{I: i, J: j, Result: merged})
				consumed[i] = true
				consumed[j] = true
				break
			}
		}

		if !consumed[i] {
			survivors = append(survivors, *p1)
		}
	}

	return survivors, merges
}
