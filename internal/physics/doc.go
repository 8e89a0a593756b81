// Package physics implements the gravity toy's force law and merge pass.
//
// Both operate on plain [body.Body] slices:
//
//   - [Attract]: one body's pull on another, applied to velocity
//   - [Accumulate]: every ordered pair, O(n^2)
//   - [Collide]: greedy merge of overlapping pairs in index order
//
// The integrator is explicit Euler with a unit timestep; see [body.Body.Update].
// Nothing here partitions space, so a few hundred bodies is the practical
// ceiling.
package physics
