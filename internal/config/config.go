package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	UI      UIConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// StorageConfig holds sqlite settings and the record key the dashboard is
// saved under.
type StorageConfig struct {
	Path string
	Key  string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
	// CellPx is the pixel width assumed for one terminal column when picking
	// the breakpoint for the current window.
	CellPx int `mapstructure:"cell_px"`
}

// LogConfig controls the log file. The TUI owns stdout, so logs never go to
// the terminal.
type LogConfig struct {
	Path  string
	Level string
}

// MetricsConfig enables the HTTP metrics endpoint when Listen is non-empty.
type MetricsConfig struct {
	Listen string
}

// Load reads configuration from file and env. Env var overrides use prefix EWDASH_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "ewdash")
	v.SetDefault("storage.path", filepath.Join(dataDir, "ewdash.db"))
	v.SetDefault("storage.key", "ew-dashboard-layouts-v1")
	v.SetDefault("ui.theme", "light")
	v.SetDefault("ui.cell_px", 16)
	v.SetDefault("log.path", filepath.Join(dataDir, "ewdash.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.listen", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("EWDASH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ewdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EWDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine, an explicit one must load
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.CellPx <= 0 {
		return Config{}, fmt.Errorf("ui.cell_px must be positive, got %d", c.UI.CellPx)
	}
	return c, nil
}

// LogLevel parses Log.Level, falling back to info for unknown names.
func (c Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
