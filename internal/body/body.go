package body

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MinRadius is the display floor every body radius is clamped to.
const MinRadius = 8.0

// ErrInvalidMass is returned for masses that are not finite and positive.
var ErrInvalidMass = errors.New("body: mass must be finite and positive")

// Source supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Color is a #rrggbb display color carried through merges.
type Color string

type Body struct {
	X, Y   float64
	VX, VY float64
	Mass   float64
	Radius float64
	Color  Color
}

// RadiusForMass derives a spawn radius from mass.
func RadiusForMass(mass float64) float64 {
	return math.Max(MinRadius, math.Sqrt(mass))
}

// RandomColor picks a hue uniformly at 70% saturation and 60% lightness.
func RandomColor(src Source) Color {
	return Color(colorful.Hsl(src.Float64()*360, 0.7, 0.6).Hex())
}

// RandomVelocity returns a velocity with each component in [-1, 1).
func RandomVelocity(src Source) (vx, vy float64) {
	vx = (src.Float64() - 0.5) * 2
	vy = (src.Float64() - 0.5) * 2
	return vx, vy
}

// New builds a body with a velocity seeded from src. An empty color is
// replaced by a random one, also drawn from src.
func New(x, y, mass, radius float64, color Color, src Source) Body {
	if color == "" {
		color = RandomColor(src)
	}
	vx, vy := RandomVelocity(src)
	return Body{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Mass:   mass,
		Radius: math.Max(MinRadius, radius),
		Color:  color,
	}
}

// Spawn creates a body the way a user click does: radius from mass, random
// color and velocity.
func Spawn(x, y, mass float64, src Source) (Body, error) {
	if err := ValidateMass(mass); err != nil {
		return Body{}, err
	}
	return New(x, y, mass, RadiusForMass(mass), "", src), nil
}

func ValidateMass(mass float64) error {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidMass, mass)
	}
	return nil
}

// Update advances the position by one unit timestep.
func (b *Body) Update() {
	b.X += b.VX
	b.Y += b.VY
}

func (b Body) Momentum() (px, py float64) {
	return b.Mass * b.VX, b.Mass * b.VY
}

func (b Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * (b.VX*b.VX + b.VY*b.VY)
}

// Label is the rounded mass shown next to a rendered body.
func (b Body) Label() string {
	return fmt.Sprintf("%.0f", b.Mass)
}

// Valid reports whether the body has finite state and positive mass.
func (b Body) Valid() bool {
	for _, v := range []float64{b.X, b.Y, b.VX, b.VY, b.Radius} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return ValidateMass(b.Mass) == nil && b.Radius >= MinRadius
}
