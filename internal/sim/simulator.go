package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/physics"
)

// Runner drives a Universe headlessly for a fixed number of frames.
type Runner struct {
	universe *Universe
	metrics  []Metric
}

func NewRunner(u *Universe) *Runner {
	return &Runner{universe: u, metrics: make([]Metric, 0)}
}

func (r *Runner) AddMetric(m Metric) { r.metrics = append(r.metrics, m) }

// Run calls Frame ticks times, checking ctx between frames. On cancellation
// the partial result is returned with the context error wrapped in a
// TickError.
func (r *Runner) Run(ctx context.Context, ticks int) (*Result, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidTicks, ticks)
	}

	u := r.universe
	result := &Result{
		Counts:        make([]float64, 0, ticks+1),
		KineticEnergy: make([]float64, 0, ticks+1),
		Metrics:       make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
		m.Observe(u.Bodies, nil)
	}
	result.record(u)

	rec := &mergeCounter{}
	u.AddObserver(rec)
	defer u.removeObserver(rec)

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			result.finish(u, r.metrics)
			return result, &TickError{Tick: u.tick, Wrapped: ctx.Err()}
		default:
		}

		rec.last = nil
		if !u.Frame() {
			continue
		}
		result.Ticks++
		result.Merges += len(rec.last)
		for _, m := range r.metrics {
			m.Observe(u.Bodies, rec.last)
		}
		result.record(u)
	}

	result.finish(u, r.metrics)
	return result, nil
}

func (res *Result) record(u *Universe) {
	s := u.Stats()
	res.Counts = append(res.Counts, float64(s.Count))
	res.KineticEnergy = append(res.KineticEnergy, s.KineticEnergy)
}

func (res *Result) finish(u *Universe, metrics []Metric) {
	res.Final = u.Snapshot()
	for _, m := range metrics {
		res.Metrics[m.Name()] = m.Value()
	}
}

type mergeCounter struct {
	last []physics.MergeEvent
}

func (c *mergeCounter) OnTick(_ int, _ []body.Body, merges []physics.MergeEvent) {
	c.last = merges
}

func (u *Universe) removeObserver(o Observer) {
	for i, x := range u.observers {
		if x == o {
			u.observers = append(u.observers[:i], u.observers[i+1:]...)
			return
		}
	}
}
