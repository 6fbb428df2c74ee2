package sim

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Restitution holds the velocity retention applied on a wall bounce.
type Restitution struct {
	// Orthogonal scales (and negates) the component into the wall.
	Orthogonal float64 `yaml:"orthogonal"`
	// Parallel scales the component along the wall.
	Parallel float64 `yaml:"parallel"`
}

// Config is the immutable tuning record handed to NewManager. Every component
// that needs the playfield bounds or a physics constant gets it from here.
type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Gravity     float64     `yaml:"gravity"`
	Restitution Restitution `yaml:"restitution"`

	MinPower        float64 `yaml:"min_power"`
	MaxPower        float64 `yaml:"max_power"`
	ChargeIncrement float64 `yaml:"charge_increment"`
	LauncherStep    float64 `yaml:"launcher_step"`
	LauncherMargin  float64 `yaml:"launcher_margin"`

	ProjectileRadius float64 `yaml:"projectile_radius"`
	OvalProjectiles  bool    `yaml:"oval_projectiles"`

	BaseTargetSize int `yaml:"base_target_size"`
	TargetsPerWave int `yaml:"targets_per_wave"`
	Players        int `yaml:"players"`
}

// DefaultConfig returns the stock arcade tuning: an 800x600 field, gravity 2
// per tick, 0.8/0.9 restitution and a single launcher.
func DefaultConfig() Config {
	return Config{
		Width:   800,
		Height:  600,
		Gravity: 2,
		Restitution: Restitution{
			Orthogonal: 0.8,
			Parallel:   0.9,
		},
		MinPower:         10,
		MaxPower:         50,
		ChargeIncrement:  2,
		LauncherStep:     5,
		LauncherMargin:   30,
		ProjectileRadius: 20,
		BaseTargetSize:   30,
		TargetsPerWave:   1,
		Players:          1,
	}
}

// Bounds returns the playfield size as a vector.
func (c Config) Bounds() Vec2 { return Vec2{c.Width, c.Height} }

var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the record for values the simulation cannot run with.
func (c Config) Validate() error {
	if name, ok := c.nonFinite(); ok {
		return fmt.Errorf("%w: %s is not a finite number", ErrInvalidConfig, name)
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field size %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.MinPower <= 0 || c.MaxPower < c.MinPower:
		return fmt.Errorf("%w: power range [%g,%g]", ErrInvalidConfig, c.MinPower, c.MaxPower)
	case c.ChargeIncrement < 0:
		return fmt.Errorf("%w: charge increment %g is negative", ErrInvalidConfig, c.ChargeIncrement)
	case c.ProjectileRadius <= 0:
		return fmt.Errorf("%w: projectile radius %g must be positive", ErrInvalidConfig, c.ProjectileRadius)
	case c.BaseTargetSize < 1:
		return fmt.Errorf("%w: base target size %d must be at least 1", ErrInvalidConfig, c.BaseTargetSize)
	case c.TargetsPerWave < 1:
		return fmt.Errorf("%w: targets per wave %d must be at least 1", ErrInvalidConfig, c.TargetsPerWave)
	case c.Players < 1 || c.Players > 2:
		return fmt.Errorf("%w: players %d must be 1 or 2", ErrInvalidConfig, c.Players)
	case c.Restitution.Orthogonal < 0 || c.Restitution.Parallel < 0:
		return fmt.Errorf("%w: restitution must not be negative", ErrInvalidConfig)
	case c.LauncherStep < 0 || c.LauncherMargin < 0:
		return fmt.Errorf("%w: launcher step %g and margin %g must not be negative",
			ErrInvalidConfig, c.LauncherStep, c.LauncherMargin)
	}
	short := math.Min(c.Width, c.Height)
	// Round targets spawn at least one radius from every wall.
	if 2*float64(c.BaseTargetSize) > short {
		return fmt.Errorf("%w: base target size %d does not fit a %gx%g field",
			ErrInvalidConfig, c.BaseTargetSize, c.Width, c.Height)
	}
	if 2*c.ProjectileRadius >= short {
		return fmt.Errorf("%w: projectile radius %g does not fit a %gx%g field",
			ErrInvalidConfig, c.ProjectileRadius, c.Width, c.Height)
	}
	// Rectangle and polygon spawn boxes are inset by 200 and 100 pixels.
	if c.Width <= 400 || c.Height <= 400 {
		return fmt.Errorf("%w: field %gx%g too small for the spawn area", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// nonFinite returns the name of the first float field holding NaN or an
// infinity.
func (c Config) nonFinite() (string, bool) {
	fields := []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"gravity", c.Gravity},
		{"restitution.orthogonal", c.Restitution.Orthogonal},
		{"restitution.parallel", c.Restitution.Parallel},
		{"min_power", c.MinPower},
		{"max_power", c.MaxPower},
		{"charge_increment", c.ChargeIncrement},
		{"launcher_step", c.LauncherStep},
		{"launcher_margin", c.LauncherMargin},
		{"projectile_radius", c.ProjectileRadius},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return f.name, true
		}
	}
	return "", false
}

// LoadConfig reads a YAML tuning file over DefaultConfig. Keys missing from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
