package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Shape:  "ellipse",
		Params: ParamsConfig{XExtent: 75, YExtent: 50, Curvature: 1},
		Animation: AnimationConfig{
			Points: 4, FPS: 10, Duration: 100, Width: 100, Resolution: 50, Mode: "trail",
		},
	},
	"comet": {
		Shape:  "ellipse",
		Params: ParamsConfig{XExtent: 75, YExtent: 50, Curvature: 1},
		Animation: AnimationConfig{
			Points: 12, FPS: 30, Duration: 60, Width: 100, Resolution: 100, Mode: "trail",
		},
	},
	"wide": {
		Shape:  "ellipse",
		Params: ParamsConfig{XExtent: 75, YExtent: 50, Curvature: 1},
		Animation: AnimationConfig{
			Points: 5, FPS: 50, Duration: 60, Width: 150, Resolution: 150, Mode: "trail", Redraw: true,
		},
	},
	"parabola": {
		Shape:  "parabola",
		Params: ParamsConfig{XExtent: 75, YExtent: 50, Curvature: 1},
		Animation: AnimationConfig{
			Points: 4, FPS: 10, Duration: 100, Width: 100, Resolution: 50, Mode: "trail",
		},
	},
	"forever": {
		Shape:  "ellipse",
		Params: ParamsConfig{XExtent: 75, YExtent: 50, Curvature: 1},
		Animation: AnimationConfig{
			Points: 4, FPS: 20, Duration: -1, Width: 100, Resolution: 50, Mode: "trail", Redraw: true,
		},
	},
	"swarm": {
		Shape:  "ellipse",
		Params: ParamsConfig{XExtent: 75, YExtent: 50, Curvature: 1},
		Animation: AnimationConfig{
			Points: 6, FPS: 15, Duration: 30, Width: 100, Resolution: 40, Mode: "sync",
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
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
