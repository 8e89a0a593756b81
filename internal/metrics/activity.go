package metrics

import (
	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/sim"
)

type KineticEnergy struct {
	name   string
	energy float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(bodies []body.Body, _ []physics.MergeEvent) {
	k.energy = sim.ComputeStats(bodies).KineticEnergy
}

func (k *KineticEnergy) Value() float64 { return k.energy }
func (k *KineticEnergy) Reset()         { k.energy = 0 }

type BodyCount struct {
	name  string
	count int
}

func NewBodyCount() *BodyCount {
	return &BodyCount{name: "bodies"}
}

func (b *BodyCount) Name() string { return b.name }

func (b *BodyCount) Observe(bodies []body.Body, _ []physics.MergeEvent) {
	b.count = len(bodies)
}

func (b *BodyCount) Value() float64 { return float64(b.count) }
func (b *BodyCount) Reset()         { b.count = 0 }

// Merges counts merge events since the last reset.
type Merges struct {
	name  string
	total int
}

func NewMerges() *Merges {
	return &Merges{name: "merges"}
}

func (m *Merges) Name() string { return m.name }

func (m *Merges) Observe(_ []body.Body, merges []physics.MergeEvent) {
	m.total += len(merges)
}

func (m *Merges) Value() float64 { return float64(m.total) }
func (m *Merges) Reset()         { m.total = 0 }

// Default returns the metric set used by headless runs.
func Default() []sim.Metric {
	return []sim.Metric{
		NewBodyCount(),
		NewMerges(),
		NewTotalMass(),
		NewMassDrift(),
		NewMomentum(),
		NewKineticEnergy(),
	}
}
