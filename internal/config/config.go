// Package config loads lumen's settings from the config file and command
// line.
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Sound         SoundConfig        `mapstructure:"sound"`
		FocusMode     FocusModeConfig    `mapstructure:"focus_mode"`
		Haptics       HapticsConfig      `mapstructure:"haptics"`
		Store         StoreConfig        `mapstructure:"store"`
		Log           LogConfig          `mapstructure:"log"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// TimerConfig holds timer settings
	TimerConfig struct {
		// Preset is the name of the preset used when none is given.
		Preset string `mapstructure:"preset"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		// Sound asks the desktop to play its own alert with notifications.
		Sound bool `mapstructure:"sound"`
	}

	// SoundConfig holds the cues played on timer events. A cue is a
	// built-in name or a path to an audio file.
	SoundConfig struct {
		Enabled         bool    `mapstructure:"enabled"`
		Volume          float64 `mapstructure:"volume"`
		Start           string  `mapstructure:"start"`
		PhaseComplete   string  `mapstructure:"phase_complete"`
		SessionComplete string  `mapstructure:"session_complete"`
	}

	// FocusModeConfig holds the commands that toggle OS do-not-disturb
	FocusModeConfig struct {
		Enabled    bool   `mapstructure:"enabled"`
		EnableCmd  string `mapstructure:"enable_cmd"`
		DisableCmd string `mapstructure:"disable_cmd"`
	}

	// HapticsConfig holds terminal beep feedback settings
	HapticsConfig struct {
		Enabled   bool    `mapstructure:"enabled"`
		Intensity float64 `mapstructure:"intensity"`
	}

	// StoreConfig selects the database driver
	StoreConfig struct {
		Driver string `mapstructure:"driver"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
		Debug bool   `mapstructure:"debug"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// CLIConfig holds per-invocation values from command line flags
	CLIConfig struct {
		Preset  string
		Task    string
		NoColor bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order, then validates
// the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// PresetName returns the preset requested on the command line, falling
// back to the configured default.
func (c *Config) PresetName() string {
	if c.CLI.Preset != "" {
		return c.CLI.Preset
	}

	return c.Timer.Preset
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"preset=%s store=%s sound=%t notifications=%t focus_mode=%t",
		c.PresetName(),
		c.Store.Driver,
		c.Sound.Enabled,
		c.Notifications.Enabled,
		c.FocusMode.Enabled,
	)
}
