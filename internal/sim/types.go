package sim

import (
	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/physics"
)

// Observer is notified after every tick that actually ran. bodies is a copy
// of the universe's bodies, shared by every observer of that frame.
type Observer interface {
	OnTick(tick int, bodies []body.Body, merges []physics.MergeEvent)
}

type Metric interface {
	Name() string
	Observe(bodies []body.Body, merges []physics.MergeEvent)
	Value() float64
	Reset()
}

type Config struct {
	G         float64
	SpawnMass float64
	Bodies    []body.Body
}

func DefaultConfig() Config {
	return Config{G: 1.0, SpawnMass: 70}
}

type Stats struct {
	Count         int
	TotalMass     float64
	PX, PY        float64
	KineticEnergy float64
	CX, CY        float64
}

type Result struct {
	Ticks         int
	Merges        int
	Final         []body.Body
	Counts        []float64
	KineticEnergy []float64
	Metrics       map[string]float64
}
