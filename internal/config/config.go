package config

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/liesim/internal/attitude"
)

const (
	DefaultStepper  = "lie_euler"
	DefaultDt       = 0.01
	DefaultDuration = 10.0
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid scenario")

type Config struct {
	Stepper  string      `yaml:"stepper"`
	Dt       float64     `yaml:"dt"`
	Duration float64     `yaml:"duration"`
	Init     InitConfig  `yaml:"init"`
	Twist    TwistConfig `yaml:"twist"`
}

type InitConfig struct {
	RotVec   []float64 `yaml:"rotvec"`
	Position []float64 `yaml:"position"`
}

// TwistConfig describes body rates and velocity; a non-zero Frequency adds
// the amplitude terms as a sinusoid.
type TwistConfig struct {
	Omega       []float64 `yaml:"omega"`
	Velocity    []float64 `yaml:"velocity"`
	AmpOmega    []float64 `yaml:"amp_omega,omitempty"`
	AmpVelocity []float64 `yaml:"amp_velocity,omitempty"`
	Frequency   float64   `yaml:"frequency,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Stepper:  DefaultStepper,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Init: InitConfig{
			RotVec:   []float64{0, 0, 0},
			Position: []float64{0, 0, 0},
		},
		Twist: TwistConfig{
			Omega:    []float64{0, 0, 0},
			Velocity: []float64{0, 0, 0},
		},
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
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalid, c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalid, c.Duration)
	}
	vectors := []struct {
		name     string
		v        []float64
		optional bool
	}{
		{"init.rotvec", c.Init.RotVec, false},
		{"init.position", c.Init.Position, false},
		{"twist.omega", c.Twist.Omega, false},
		{"twist.velocity", c.Twist.Velocity, false},
		{"twist.amp_omega", c.Twist.AmpOmega, true},
		{"twist.amp_velocity", c.Twist.AmpVelocity, true},
	}
	for _, vec := range vectors {
		if vec.optional && len(vec.v) == 0 {
			continue
		}
		if len(vec.v) != 3 {
			return fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalid, vec.name, len(vec.v))
		}
	}
	return nil
}

func (c *Config) InitialPose() attitude.Pose {
	return attitude.NewPose(toVec(c.Init.RotVec), toVec(c.Init.Position))
}

func (c *Config) Profile() attitude.TwistProfile {
	base := attitude.NewTwist(toVec(c.Twist.Omega), toVec(c.Twist.Velocity))
	if c.Twist.Frequency == 0 {
		return attitude.ConstantTwist{Value: base}
	}
	return attitude.OscillatingTwist{
		Base:      base,
		Amplitude: attitude.NewTwist(toVec(c.Twist.AmpOmega), toVec(c.Twist.AmpVelocity)),
		Frequency: c.Twist.Frequency,
	}
}

func (c *Config) SimConfig() attitude.Config {
	return attitude.Config{Dt: c.Dt, Duration: c.Duration}
}

func toVec(v []float64) r3.Vec {
	if len(v) < 3 {
		return r3.Vec{}
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
