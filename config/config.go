// Package config provides configuration loading for the engine and its tooling.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/fixphys/vmath"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Environment overrides, applied after the config file
const (
	EnvTickRate = "FIXPHYS_TICK_RATE"
	EnvDebug    = "FIXPHYS_DEBUG"
	EnvSimTicks = "FIXPHYS_SIM_TICKS"
	EnvTraceDir = "FIXPHYS_TRACE_DIR"
)

// Config holds all configuration parameters.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Sim     SimConfig     `toml:"sim"`
	Trace   TraceConfig   `toml:"trace"`
	Sandbox SandboxConfig `toml:"sandbox"`
}

// EngineConfig holds the deterministic simulation parameters.
type EngineConfig struct {
	TickRate int  `toml:"tick_rate"` // Ticks per second
	Debug    bool `toml:"debug"`     // Enables file logging and resolver wedge logs
}

// SimConfig holds headless run parameters.
type SimConfig struct {
	Ticks int `toml:"ticks"` // Ticks per run
}

// TraceConfig holds trace output settings.
type TraceConfig struct {
	Dir string `toml:"dir"` // Empty disables trace output
}

// SandboxConfig holds terminal visualizer settings. Display only.
type SandboxConfig struct {
	CellsPerUnit int     `toml:"cells_per_unit"`
	Speed        float64 `toml:"speed"` // Mover speed in units per second
	Sound        bool    `toml:"sound"`
}

// TickDuration is the fixed tick length, 1 / TickRate
func (e EngineConfig) TickDuration() vmath.Fixed {
	return vmath.One.Div(vmath.FromInt(e.TickRate))
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := toml.Unmarshal(defaultsTOML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load builds the configuration from defaults, the optional TOML file at path, a .env file in
// the working directory if present, and finally the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvTickRate); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickRate, err)
		}
		c.Engine.TickRate = n
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Engine.Debug = b
	}
	if v, ok := os.LookupEnv(EnvSimTicks); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSimTicks, err)
		}
		c.Sim.Ticks = n
	}
	if v, ok := os.LookupEnv(EnvTraceDir); ok {
		c.Trace.Dir = v
	}
	return nil
}

// Validate rejects values the engine cannot run with
func (c *Config) Validate() error {
	// Above 1024 Hz the tick duration rounds to zero in Q10
	if c.Engine.TickRate < 1 || c.Engine.TickRate > vmath.Scale {
		return fmt.Errorf("engine.tick_rate must be in [1, %d], got %d", vmath.Scale, c.Engine.TickRate)
	}
	if c.Sim.Ticks < 0 {
		return fmt.Errorf("sim.ticks must not be negative, got %d", c.Sim.Ticks)
	}
	if c.Sandbox.CellsPerUnit <= 0 {
		return fmt.Errorf("sandbox.cells_per_unit must be positive, got %d", c.Sandbox.CellsPerUnit)
	}
	if c.Sandbox.Speed <= 0 {
		return fmt.Errorf("sandbox.speed must be positive, got %v", c.Sandbox.Speed)
	}
	return nil
}
