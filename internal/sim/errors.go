package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/gravbox/internal/body"
)

var (
	// ErrInvalidMass indicates a spawn or seed mass that is not finite and positive.
	ErrInvalidMass = body.ErrInvalidMass

	// ErrInvalidGravity indicates a NaN or infinite gravitational constant.
	ErrInvalidGravity = errors.New("sim: gravitational constant must be finite")

	// ErrInvalidTicks indicates a non-positive tick count for a headless run.
	ErrInvalidTicks = errors.New("sim: tick count must be positive")

	// ErrInvalidBody indicates a seed body with non-finite state or a radius below the floor.
	ErrInvalidBody = errors.New("sim: invalid body")
)

// TickError wraps an error with the tick it occurred on.
type TickError struct {
	Tick    int
	Wrapped error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Wrapped)
}

func (e *TickError) Unwrap() error {
	return e.Wrapped
}
