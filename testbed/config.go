package testbed

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/embergfx/ember/engine/core"
)

type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Frames is how many frames the demo renders before exiting.
	// Zero means run until interrupted.
	Frames int `toml:"frames"`
	// VblankIntervalMS paces the simulated display. 16 approximates
	// a 60 Hz panel.
	VblankIntervalMS int `toml:"vblank_interval_ms"`
	// VRAMSizeBytes overrides the simulated video-memory pool size.
	// Zero keeps the device default.
	VRAMSizeBytes uint32 `toml:"vram_size_bytes"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:         "info",
		Frames:           300,
		VblankIntervalMS: 16,
	}
}

// LoadConfig reads a TOML config file, falling back to defaults when
// the file does not exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			core.LogDebug("config %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) logLevel() core.LogLevel {
	switch c.LogLevel {
	case "debug":
		return core.DebugLevel
	case "warn":
		return core.WarnLevel
	case "error":
		return core.ErrorLevel
	default:
		return core.InfoLevel
	}
}
