package config

import "sort"

var Presets = map[string]*Config{
	"sun": DefaultConfig(),
	"binary": {
		G: 1.0, SpawnMass: 40, Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS, Ticks: DefaultTicks,
		Bodies: []BodyConfig{
			{X: 300, Y: 300, VY: -0.6, Mass: 120, Color: "#ff6b6b"},
			{X: 500, Y: 300, VY: 0.6, Mass: 120, Color: "#48dbfb"},
		},
	},
	"cluster": {
		G: 0.5, SpawnMass: 30, Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS, Ticks: DefaultTicks,
		Bodies: []BodyConfig{
			{X: 340, Y: 260, Mass: 20},
			{X: 460, Y: 260, Mass: 25},
			{X: 400, Y: 360, Mass: 30},
			{X: 300, Y: 360, Mass: 15},
			{X: 500, Y: 360, Mass: 15},
			{X: 400, Y: 200, Mass: 10},
		},
	},
	"collision": {
		G: 1.0, SpawnMass: 70, Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS, Ticks: 200,
		Bodies: []BodyConfig{
			{X: 200, Y: 300, VX: 1.5, Mass: 90, Color: "#feca57"},
			{X: 600, Y: 300, VX: -1.5, Mass: 60, Color: "#ff9ff3"},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Bodies = append([]BodyConfig(nil), p.Bodies...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
