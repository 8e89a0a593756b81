package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/physics"
)

// Universe owns the live body set and the user-controlled parameters.
// It is not safe for concurrent use; front ends drive it from one loop.
type Universe struct {
	Bodies    []body.Body
	G         float64
	SpawnMass float64
	Paused    bool

	tick      int
	src       body.Source
	initial   Config
	observers []Observer
}

func New(cfg Config, src body.Source) (*Universe, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	u := &Universe{src: src, initial: cloneConfig(cfg)}
	u.Reset()
	return u, nil
}

func validateConfig(cfg Config) error {
	if err := validateG(cfg.G); err != nil {
		return err
	}
	if err := body.ValidateMass(cfg.SpawnMass); err != nil {
		return fmt.Errorf("spawn mass: %w", err)
	}
	for i, b := range cfg.Bodies {
		if err := body.ValidateMass(b.Mass); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
		if !b.Valid() {
			return fmt.Errorf("%w: body %d", ErrInvalidBody, i)
		}
	}
	return nil
}

func validateG(g float64) error {
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidGravity, g)
	}
	return nil
}

func cloneConfig(cfg Config) Config {
	c := cfg
	c.Bodies = append([]body.Body(nil), cfg.Bodies...)
	return c
}

func (u *Universe) AddObserver(o Observer) { u.observers = append(u.observers, o) }

// Tick advances the universe by one step regardless of the pause flag:
// pairwise attraction, position update, then one merge pass.
func (u *Universe) Tick() []physics.MergeEvent {
	physics.Accumulate(u.Bodies, u.G)
	for i := range u.Bodies {
		u.Bodies[i].Update()
	}
	next, merges := physics.Collide(u.Bodies)
	u.Bodies = next
	u.tick++
	return merges
}

// Frame is called once per display frame. It ticks unless paused and
// reports whether a tick ran.
func (u *Universe) Frame() bool {
	if u.Paused {
		return false
	}
	merges := u.Tick()
	if len(u.observers) == 0 {
		return true
	}
	bodies := u.Snapshot()
	for _, o := range u.observers {
		o.OnTick(u.tick, bodies, merges)
	}
	return true
}

// Spawn appends a body of the current spawn mass at (x, y).
func (u *Universe) Spawn(x, y float64) error {
	return u.SpawnWithMass(x, y, u.SpawnMass)
}

func (u *Universe) SpawnWithMass(x, y, mass float64) error {
	b, err := body.Spawn(x, y, mass, u.src)
	if err != nil {
		return err
	}
	u.Bodies = append(u.Bodies, b)
	return nil
}

func (u *Universe) SetG(g float64) error {
	if err := validateG(g); err != nil {
		return err
	}
	u.G = g
	return nil
}

func (u *Universe) SetSpawnMass(m float64) error {
	if err := body.ValidateMass(m); err != nil {
		return err
	}
	u.SpawnMass = m
	return nil
}

func (u *Universe) TogglePause() bool {
	u.Paused = !u.Paused
	return u.Paused
}

func (u *Universe) SetPaused(p bool) { u.Paused = p }

// TickCount is the number of ticks run since the last reset.
func (u *Universe) TickCount() int { return u.tick }

// Snapshot returns a copy of the live bodies for renderers.
func (u *Universe) Snapshot() []body.Body {
	return append([]body.Body(nil), u.Bodies...)
}

// Reset restores the bodies and parameters the universe was created with.
// The pause flag is cleared.
func (u *Universe) Reset() {
	u.Bodies = append([]body.Body(nil), u.initial.Bodies...)
	u.G = u.initial.G
	u.SpawnMass = u.initial.SpawnMass
	u.Paused = false
	u.tick = 0
}

func (u *Universe) Stats() Stats {
	return ComputeStats(u.Bodies)
}

func ComputeStats(bodies []body.Body) Stats {
	s := Stats{Count: len(bodies)}
	for _, b := range bodies {
		px, py := b.Momentum()
		s.TotalMass += b.Mass
		s.PX += px
		s.PY += py
		s.KineticEnergy += b.KineticEnergy()
		s.CX += b.X * b.Mass
		s.CY += b.Y * b.Mass
	}
	if s.TotalMass > 0 {
		s.CX /= s.TotalMass
		s.CY /= s.TotalMass
	}
	return s
}
