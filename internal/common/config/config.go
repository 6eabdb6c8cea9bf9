// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// TodayLayout is the layout of the decoder.today override.
const TodayLayout = "2006-01-02"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Registry RegistryConfig `mapstructure:"registry"`
	Decoder  DecoderConfig  `mapstructure:"decoder"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig controls the prometheus endpoint exposed by long-running commands.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// RegistryConfig locates the exported contract registry document.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// DecoderConfig tunes record construction.
type DecoderConfig struct {
	// Today pins the current date (YYYY-MM-DD) for reproducible batch runs.
	// Empty means the wall clock.
	Today string `mapstructure:"today"`
}

// Clock returns the clock the decoder should use.
func (d DecoderConfig) Clock() (func() time.Time, error) {
	if d.Today == "" {
		return time.Now, nil
	}
	pinned, err := time.ParseInLocation(TodayLayout, d.Today, time.Local)
	if err != nil {
		return nil, fmt.Errorf("decoder.today must be YYYY-MM-DD: %w", err)
	}
	return func() time.Time { return pinned }, nil
}
