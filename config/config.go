// Package config loads tracker session settings from YAML.
package config

import (
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/chabad360/go-osc-tracker/spatial"
)

const (
	DefaultAddress = "/source"
	DefaultRateHz  = 30
	// MaxRateHz bounds rate_hz so the send interval stays well above clock resolution.
	MaxRateHz      = 1000
)

// Config holds one tracking session.
type Config struct {
	// Target is the host:port of the OSC listener.
	Target           string          `yaml:"target"`
	Address          string          `yaml:"address"`
	RateHz           int             `yaml:"rate_hz"`
	CoordinateSystem string          `yaml:"coordinate_system"`
	IndexBase        int             `yaml:"index_base"`
	Group            *int            `yaml:"group,omitempty"`
	Reference        *FrameConfig    `yaml:"reference,omitempty"`
	Self             FrameConfig     `yaml:"self"`
	Positions        []PositionValue `yaml:"positions"`
	Logging          LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogPath string `yaml:"log_path,omitempty"`
}

// FrameConfig is a reference frame given as a position and Euler angles in degrees.
type FrameConfig struct {
	Position PositionValue `yaml:"position"`
	Yaw      float64       `yaml:"yaw"`
	Pitch    float64       `yaml:"pitch"`
	Roll     float64       `yaml:"roll"`
}

// Frame converts the config into a spatial.Frame.
func (f FrameConfig) Frame() spatial.Frame {
	return spatial.FrameFromEuler(f.Position.Vec(), f.Yaw, f.Pitch, f.Roll)
}

// PositionValue is a position written either as a [x, y, z] sequence or as a
// {x, y, z} mapping.
type PositionValue r3.Vec

// Vec returns the position as an r3.Vec.
func (p PositionValue) Vec() r3.Vec {
	return r3.Vec(p)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PositionValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xyz []float64
		if err := node.Decode(&xyz); err != nil {
			return err
		}
		if len(xyz) != 3 {
			return fmt.Errorf("line %d: position needs 3 components, got %d", node.Line, len(xyz))
		}
		*p = PositionValue{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		return nil
	case yaml.MappingNode:
		var m struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		*p = PositionValue{X: m.X, Y: m.Y, Z: m.Z}
		return nil
	default:
		return fmt.Errorf("line %d: position must be a sequence or mapping", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (p PositionValue) MarshalYAML() (interface{}, error) {
	return []float64{p.X, p.Y, p.Z}, nil
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file '%s': %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file '%s': %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.RateHz == 0 {
		c.RateHz = DefaultRateHz
	}
	if c.CoordinateSystem == "" {
		c.CoordinateSystem = "xyz"
	}
	c.CoordinateSystem = strings.ToLower(c.CoordinateSystem)
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("missing required field in config: target")
	}
	if !strings.HasPrefix(c.Address, "/") {
		return fmt.Errorf("invalid address %q: must start with '/'", c.Address)
	}
	if c.RateHz <= 0 || c.RateHz > MaxRateHz {
		return fmt.Errorf("invalid rate_hz %d: must be between 1 and %d", c.RateHz, MaxRateHz)
	}
	switch c.CoordinateSystem {
	case "xyz", "aed":
	default:
		return fmt.Errorf("invalid coordinate_system %q: must be xyz or aed", c.CoordinateSystem)
	}
	return nil
}

// ReferenceFrame returns the configured reference frame, or nil if none is set.
func (c *Config) ReferenceFrame() *spatial.Frame {
	if c.Reference == nil {
		return nil
	}
	f := c.Reference.Frame()
	return &f
}

// PositionVecs returns the configured positions in order.
func (c *Config) PositionVecs() []r3.Vec {
	out := make([]r3.Vec, len(c.Positions))
	for i, p := range c.Positions {
		out[i] = p.Vec()
	}
	return out
}
