package config

import (
	"fmt"
	"os"

	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultG         = 1.0
	DefaultSpawnMass = 70.0
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultFPS       = 60
	DefaultTicks     = 1000
	DefaultSunMass   = 70.0
	DefaultSunRadius = 16.0
	DefaultSunColor  = "#ffd700"
)

type Config struct {
	G         float64      `yaml:"g"`
	SpawnMass float64      `yaml:"spawn_mass"`
	Seed      int64        `yaml:"seed"`
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	FPS       int          `yaml:"fps"`
	Ticks     int          `yaml:"ticks"`
	Bodies    []BodyConfig `yaml:"bodies"`
}

// BodyConfig describes a seed body. A zero radius is derived from mass and
// an empty color is drawn at random. With RandomVelocity set, VX and VY are
// ignored and the velocity is drawn like a spawned body's.
type BodyConfig struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	VX             float64 `yaml:"vx"`
	VY             float64 `yaml:"vy"`
	Mass           float64 `yaml:"mass"`
	Radius         float64 `yaml:"radius"`
	Color          string  `yaml:"color"`
	RandomVelocity bool    `yaml:"random_velocity"`
}

func DefaultConfig() *Config {
	return &Config{
		G:         DefaultG,
		SpawnMass: DefaultSpawnMass,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FPS:       DefaultFPS,
		Ticks:     DefaultTicks,
		Bodies: []BodyConfig{{
			X:      DefaultWidth / 2,
			Y:      DefaultHeight / 2,
			Mass:   DefaultSunMass,
			Radius: DefaultSunRadius,
			Color:  DefaultSunColor,

			RandomVelocity: true,
		}},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if err := body.ValidateMass(c.SpawnMass); err != nil {
		return fmt.Errorf("spawn_mass: %w", err)
	}
	for i, b := range c.Bodies {
		if err := body.ValidateMass(b.Mass); err != nil {
			return fmt.Errorf("bodies[%d]: %w", i, err)
		}
	}
	return nil
}

// SimConfig converts the file form into seed bodies for sim.New. Random
// colors and velocities are drawn from src in body order, color first.
func (c *Config) SimConfig(src body.Source) sim.Config {
	bodies := make([]body.Body, 0, len(c.Bodies))
	for _, bc := range c.Bodies {
		radius := bc.Radius
		if radius == 0 {
			radius = body.RadiusForMass(bc.Mass)
		}
		color := body.Color(bc.Color)
		if color == "" {
			color = body.RandomColor(src)
		}
		vx, vy := bc.VX, bc.VY
		if bc.RandomVelocity {
			vx, vy = body.RandomVelocity(src)
		}
		bodies = append(bodies, body.Body{
			X:      bc.X,
			Y:      bc.Y,
			VX:     vx,
			VY:     vy,
			Mass:   bc.Mass,
			Radius: max(body.MinRadius, radius),
			Color:  color,
		})
	}
	return sim.Config{G: c.G, SpawnMass: c.SpawnMass, Bodies: bodies}
}
