// Package config loads runtime settings from the environment
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

var (
	ErrInvalidWorld = errors.New("world dimensions must be positive")
	ErrInvalidTick  = errors.New("tick interval must be positive")
	ErrInvalidSpawn = errors.New("spawn distances must satisfy 0 <= min <= max")
	ErrInvalidCell  = errors.New("cell size must be positive")
)

// Config holds every tunable the host passes into the engine
type Config struct {
	// Seed of the shared rng; zero picks a time based seed in the host
	Seed uint64 `env:"WILDHUNT_SEED" envDefault:"0"`

	WorldWidth  float64 `env:"WILDHUNT_WORLD_WIDTH"  envDefault:"3000"`
	WorldHeight float64 `env:"WILDHUNT_WORLD_HEIGHT" envDefault:"2000"`

	TickInterval time.Duration `env:"WILDHUNT_TICK_INTERVAL" envDefault:"16ms"`

	SpawnMinDistance float64 `env:"WILDHUNT_SPAWN_MIN" envDefault:"300"`
	SpawnMaxDistance float64 `env:"WILDHUNT_SPAWN_MAX" envDefault:"700"`
	AutoSpawn        bool    `env:"WILDHUNT_AUTO_SPAWN" envDefault:"true"`

	// World units covered by one terminal cell
	CellWidth  float64 `env:"WILDHUNT_CELL_WIDTH"  envDefault:"10"`
	CellHeight float64 `env:"WILDHUNT_CELL_HEIGHT" envDefault:"20"`

	Debug  bool   `env:"WILDHUNT_DEBUG"   envDefault:"false"`
	LogDir string `env:"WILDHUNT_LOG_DIR" envDefault:"logs"`
}

// Default returns the documented defaults without consulting the environment
func Default() Config {
	var cfg Config
	// An empty environment only applies envDefault tags
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

// Load parses the process environment and validates the result
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first setting the engine cannot run with
func (c Config) Validate() error {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return ErrInvalidWorld
	}
	if c.TickInterval <= 0 {
		return ErrInvalidTick
	}
	if c.SpawnMinDistance < 0 || c.SpawnMinDistance > c.SpawnMaxDistance {
		return ErrInvalidSpawn
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return ErrInvalidCell
	}
	return nil
}
