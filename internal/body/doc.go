// Package body defines the circular mass points moved by the simulation.
//
// Bodies are plain values. Identity is positional: a [Body] is whatever sits
// at an index of the live slice, and merging replaces two entries with one.
//
// Randomness used at construction (initial velocity, color) comes from an
// injected [Source], so a seeded *rand.Rand gives reproducible universes:
//
//	src := rand.New(rand.NewSource(42))
//	b, err := body.Spawn(400, 300, 70, src)
package body
