package control

import (
	"errors"

	"github.com/san-kum/gravbox/internal/sim"
)

const (
	DefaultGravityStep = 1.1
	DefaultMassStep    = 10.0
)

// Input is the user input gathered during one frame.
type Input struct {
	TogglePause bool
	Reset       bool
	GravityUp   bool
	GravityDown bool
	MassUp      bool
	MassDown    bool

	Spawn          bool
	SpawnX, SpawnY float64
}

// Surface applies Input to a universe. Gravity scales multiplicatively by
// GravityStep; spawn mass moves additively by MassStep.
type Surface struct {
	GravityStep float64
	MassStep    float64
}

func NewSurface() *Surface {
	return &Surface{GravityStep: DefaultGravityStep, MassStep: DefaultMassStep}
}

// Apply performs every requested action in a fixed order: reset, pause,
// gravity, spawn mass, spawn. A rejected action does not stop the rest;
// all errors are joined.
func (s *Surface) Apply(u *sim.Universe, in Input) error {
	var errs []error

	if in.Reset {
		u.Reset()
	}
	if in.TogglePause {
		u.TogglePause()
	}
	if in.GravityUp {
		errs = append(errs, u.SetG(u.G*s.GravityStep))
	}
	if in.GravityDown {
		errs = append(errs, u.SetG(u.G/s.GravityStep))
	}
	if in.MassUp {
		errs = append(errs, u.SetSpawnMass(u.SpawnMass+s.MassStep))
	}
	if in.MassDown {
		errs = append(errs, u.SetSpawnMass(u.SpawnMass-s.MassStep))
	}
	if in.Spawn {
		errs = append(errs, u.Spawn(in.SpawnX, in.SpawnY))
	}

	return errors.Join(errs...)
}

// Empty reports whether the input requests nothing.
func (in Input) Empty() bool {
	return in == Input{}
}
