package metrics

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/sim"
)

func TestMassDrift(t *testing.T) {
	m := NewMassDrift()

	m.Observe([]body.Body{{Mass: 10}, {Mass: 10}}, nil)
	m.Observe([]body.Body{{Mass: 20}}, nil)
	if m.Value() != 0 {
		t.Errorf("merge-only history should not drift, got %v", m.Value())
	}

	m.Observe([]body.Body{{Mass: 25}}, nil)
	if math.Abs(m.Value()-0.25) > 1e-12 {
		t.Errorf("expected drift 0.25, got %v", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestMomentum(t *testing.T) {
	m := NewMomentum()
	m.Observe([]body.Body{{VX: 3, Mass: 1}, {VY: 4, Mass: 1}}, nil)
	if m.Value() != 5 {
		t.Errorf("expected momentum 5, got %v", m.Value())
	}
}

func TestMerges(t *testing.T) {
	m := NewMerges()
	m.Observe(nil, []physics.MergeEvent{{I: 0, J: 1}})
	m.Observe(nil, []physics.MergeEvent{{I: 0, J: 2}, {I: 3, J: 4}})
	if m.Value() != 3 {
		t.Errorf("expected 3 merges, got %v", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected 0 after reset")
	}
}

func TestDefaultWithRunner(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.Bodies = []body.Body{
		{X: 0, Mass: 10, Radius: 8},
		{X: 4, Mass: 30, Radius: 8},
	}
	u, err := sim.New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	r := sim.NewRunner(u)
	for _, m := range Default() {
		r.AddMetric(m)
	}
	result, err := r.Run(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		expected float64
	}{
		{"bodies", 1},
		{"merges", 1},
		{"total_mass", 40},
		{"mass_drift", 0},
	}
	for _, tt := range tests {
		if got := result.Metrics[tt.name]; math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, got)
		}
	}
	if _, ok := result.Metrics["kinetic_energy"]; !ok {
		t.Error("kinetic_energy metric missing")
	}
}
