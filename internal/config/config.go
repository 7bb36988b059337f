package config

import (
	"os"

	"github.com/san-kum/bounce/internal/anim"
	"github.com/san-kum/bounce/internal/curve"
	"gopkg.in/yaml.v3"
)

const DefaultShape = "ellipse"

type Config struct {
	Shape     string          `yaml:"shape"`
	Params    ParamsConfig    `yaml:"params"`
	Animation AnimationConfig `yaml:"animation"`
}

type ParamsConfig struct {
	XExtent   float64 `yaml:"x_extent"`
	YExtent   float64 `yaml:"y_extent"`
	Curvature float64 `yaml:"curvature"`
}

type AnimationConfig struct {
	Points     int     `yaml:"points"`
	FPS        int     `yaml:"fps"`
	Duration   float64 `yaml:"duration"`
	Width      int     `yaml:"width"`
	Resolution int     `yaml:"resolution"`
	Mode       string  `yaml:"mode"`
	Redraw     bool    `yaml:"redraw"`
}

func DefaultConfig() *Config {
	return &Config{
		Shape: DefaultShape,
		Params: ParamsConfig{
			XExtent:   curve.DefaultXExtent,
			YExtent:   curve.DefaultYExtent,
			Curvature: curve.DefaultCurvature,
		},
		Animation: AnimationConfig{
			Points:     anim.DefaultPoints,
			FPS:        anim.DefaultFrameRate,
			Duration:   anim.DefaultDuration,
			Width:      anim.DefaultWidth,
			Resolution: anim.DefaultResolution,
			Mode:       string(anim.ModeTrail),
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) ShapeValues() []float64 {
	return []float64{c.Params.XExtent, c.Params.YExtent, c.Params.Curvature}
}

func (c *Config) SetShapeValues(values []float64) {
	if len(values) != 3 {
		return
	}
	c.Params = ParamsConfig{XExtent: values[0], YExtent: values[1], Curvature: values[2]}
}

func (c *Config) AnimConfig() anim.Config {
	return anim.Config{
		Points:     c.Animation.Points,
		FrameRate:  c.Animation.FPS,
		Duration:   c.Animation.Duration,
		Width:      c.Animation.Width,
		Resolution: c.Animation.Resolution,
		Mode:       anim.Mode(c.Animation.Mode),
		Redraw:     c.Animation.Redraw,
	}
}

// Build validates the animation settings and constructs the shape with the
// step they imply.
func (c *Config) Build() (curve.Shape, anim.Config, error) {
	ac := c.AnimConfig()
	if err := ac.Validate(); err != nil {
		return nil, ac, err
	}
	shape, err := curve.New(c.Shape, ac.Step(), c.ShapeValues()...)
	if err != nil {
		return nil, ac, err
	}
	return shape, ac, nil
}
