package metrics

import (
	"math"

	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/sim"
)

type TotalMass struct {
	name  string
	total float64
}

func NewTotalMass() *TotalMass {
	return &TotalMass{name: "total_mass"}
}

func (m *TotalMass) Name() string { return m.name }

func (m *TotalMass) Observe(bodies []body.Body, _ []physics.MergeEvent) {
	m.total = sim.ComputeStats(bodies).TotalMass
}

func (m *TotalMass) Value() float64 { return m.total }
func (m *TotalMass) Reset()         { m.total = 0 }

// MassDrift tracks the largest relative deviation of total mass from the
// first observation. Merges conserve mass, so anything above rounding error
// points at a bug or a spawn during the run.
type MassDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewMassDrift() *MassDrift {
	return &MassDrift{name: "mass_drift"}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) Observe(bodies []body.Body, _ []physics.MergeEvent) {
	total := sim.ComputeStats(bodies).TotalMass
	if m.samples == 0 {
		m.initial = total
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(total-m.initial) / m.initial
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MassDrift) Value() float64 { return m.maxDrift }

func (m *MassDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// Momentum reports the magnitude of the total momentum at the latest
// observation.
type Momentum struct {
	name string
	mag  float64
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(bodies []body.Body, _ []physics.MergeEvent) {
	s := sim.ComputeStats(bodies)
	m.mag = math.Hypot(s.PX, s.PY)
}

func (m *Momentum) Value() float64 { return m.mag }
func (m *Momentum) Reset()         { m.mag = 0 }
