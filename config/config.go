package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/rollaball/locomotion"
	"github.com/lixenwraith/rollaball/parameter"
)

var (
	ErrInvalidTick   = errors.New("invalid tick interval")
	ErrInvalidSpeed  = errors.New("invalid player speed")
	ErrInvalidRadius = errors.New("invalid player radius")
	ErrInvalidArena  = errors.New("invalid arena")
)

type Config struct {
	Sim     SimConfig     `yaml:"sim"`
	Player  PlayerConfig  `yaml:"player"`
	Arena   ArenaConfig   `yaml:"arena"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

type SimConfig struct {
	Tick time.Duration          `yaml:"tick"`
	Mode locomotion.ControlMode `yaml:"mode"`
}

type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	TranslateSpeed float64 `yaml:"translate_speed"`
	Radius         float64 `yaml:"radius"`
}

type ArenaConfig struct {
	Size          float64 `yaml:"size"`
	WallThickness float64 `yaml:"wall_thickness"`
	Restitution   float64 `yaml:"restitution"`
}

type InputConfig struct {
	Hold time.Duration `yaml:"hold"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the settings of the force-driven demo
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			Tick: parameter.GameUpdateInterval,
			Mode: locomotion.ControlVelocity,
		},
		Player: PlayerConfig{
			Speed:          parameter.PlayerSpeed,
			TranslateSpeed: parameter.TranslateSpeed,
			Radius:         parameter.PlayerRadius,
		},
		Arena: ArenaConfig{
			Size:          parameter.ArenaSize,
			WallThickness: parameter.WallThickness,
			Restitution:   parameter.Restitution,
		},
		Input: InputConfig{
			Hold: parameter.InputHoldWindow,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file over the defaults, keys absent from the file keep their default
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges the simulation relies on
func (c *Config) Validate() error {
	if c.Sim.Tick < parameter.MinGameUpdateInterval || c.Sim.Tick > parameter.MaxGameUpdateInterval {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrInvalidTick, c.Sim.Tick,
			parameter.MinGameUpdateInterval, parameter.MaxGameUpdateInterval)
	}
	if c.Player.Speed < 0 || c.Player.TranslateSpeed < 0 {
		return fmt.Errorf("%w: speeds must be non-negative", ErrInvalidSpeed)
	}
	if c.Player.Radius < parameter.PlayerRadiusMin || c.Player.Radius > parameter.PlayerRadiusMax {
		return fmt.Errorf("%w: %.2f not in [%.2f, %.2f]", ErrInvalidRadius, c.Player.Radius,
			parameter.PlayerRadiusMin, parameter.PlayerRadiusMax)
	}
	if c.Arena.Size <= 0 || c.Arena.WallThickness < 0 {
		return fmt.Errorf("%w: size %.2f, wall %.2f", ErrInvalidArena, c.Arena.Size, c.Arena.WallThickness)
	}
	if c.Arena.Size <= c.Arena.WallThickness+2*c.Player.Radius {
		return fmt.Errorf("%w: size %.2f leaves no room for the player", ErrInvalidArena, c.Arena.Size)
	}
	if c.Arena.Restitution < 0 || c.Arena.Restitution > 1 {
		return fmt.Errorf("%w: restitution %.2f not in [0, 1]", ErrInvalidArena, c.Arena.Restitution)
	}
	return nil
}
