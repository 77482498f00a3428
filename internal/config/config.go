package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/synapse/internal/field"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS         = 60
	DefaultTheme       = "neural"
	DefaultUnitsPerDot = 4.0
	DefaultRainDensity = 0.02
)

// ErrInvalidConfig indicates a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Seed    int64         `yaml:"seed"`
	Field   FieldConfig   `yaml:"field"`
	Display DisplayConfig `yaml:"display"`
	Effects EffectsConfig `yaml:"effects"`
	Profile Profile       `yaml:"profile"`
}

type FieldConfig struct {
	NodeCount       int     `yaml:"node_count"`
	InfluenceRadius float64 `yaml:"influence_radius"`
	Repulsion       float64 `yaml:"repulsion"`
	SpeedRange      float64 `yaml:"speed_range"`
	MinRadius       float64 `yaml:"min_radius"`
	MaxRadius       float64 `yaml:"max_radius"`
	MaxEdgeOpacity  float64 `yaml:"max_edge_opacity"`
}

type DisplayConfig struct {
	FPS         int     `yaml:"fps"`
	Theme       string  `yaml:"theme"`
	UnitsPerDot float64 `yaml:"units_per_dot"`
}

type EffectsConfig struct {
	Rain        bool    `yaml:"rain"`
	RainDensity float64 `yaml:"rain_density"`
	Typewriter  bool    `yaml:"typewriter"`
	Reveal      bool    `yaml:"reveal"`
}

func DefaultConfig() *Config {
	p := field.DefaultParams()
	return &Config{
		Field: FieldConfig{
			NodeCount:       p.NodeCount,
			InfluenceRadius: p.InfluenceRadius,
			Repulsion:       p.RepulsionFactor,
			SpeedRange:      p.SpeedRange,
			MinRadius:       p.MinRadius,
			MaxRadius:       p.MaxRadius,
			MaxEdgeOpacity:  p.MaxEdgeOpacity,
		},
		Display: DisplayConfig{
			FPS:         DefaultFPS,
			Theme:       DefaultTheme,
			UnitsPerDot: DefaultUnitsPerDot,
		},
		Effects: EffectsConfig{
			RainDensity: DefaultRainDensity,
			Typewriter:  true,
			Reveal:      true,
		},
		Profile: DefaultProfile(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate checks display settings and the field parameters they produce.
func (c *Config) Validate() error {
	if c.Display.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive", ErrInvalidConfig)
	}
	if c.Display.UnitsPerDot <= 0 {
		return fmt.Errorf("%w: units_per_dot must be positive", ErrInvalidConfig)
	}
	if c.Effects.RainDensity < 0 || c.Effects.RainDensity > 1 {
		return fmt.Errorf("%w: rain_density must be within [0, 1]", ErrInvalidConfig)
	}
	if err := c.FieldParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// FieldParams converts the field section into animator parameters. Colours
// come from the theme and are left at their defaults here.
func (c *Config) FieldParams() field.Params {
	p := field.DefaultParams()
	p.NodeCount = c.Field.NodeCount
	p.InfluenceRadius = c.Field.InfluenceRadius
	p.RepulsionFactor = c.Field.Repulsion
	p.SpeedRange = c.Field.SpeedRange
	p.MinRadius = c.Field.MinRadius
	p.MaxRadius = c.Field.MaxRadius
	p.MaxEdgeOpacity = c.Field.MaxEdgeOpacity
	return p
}
