// Package config provides TOML-based configuration for tessellate.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Layout  LayoutConfig  `toml:"layout"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error
}

// LayoutConfig selects and tunes the layout that is solved.
type LayoutConfig struct {
	// Preset is a preset name, or "auto" to pick one from the terminal size.
	Preset string `toml:"preset"`
	// Margin is applied around the whole terminal area.
	Margin int `toml:"margin"`
	// Cache enables memoization of solved layouts.
	Cache bool `toml:"cache"`
	// PresetDir holds extra *.toml / *.yaml presets.
	PresetDir string `toml:"preset_dir"`
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.General.LogLevel); err != nil {
		return err
	}
	if c.Layout.Margin < 0 || c.Layout.Margin > 65535 {
		return fmt.Errorf("%w: layout.margin %d out of range 0-65535", ErrInvalid, c.Layout.Margin)
	}
	return nil
}

// SlogLevel returns the configured log level. Invalid values map to Info;
// call Validate to catch them.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.General.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: general.log_level %q", ErrInvalid, s)
	}
}
