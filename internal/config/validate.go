package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ayoisaiah/lumen/internal/platform"
)

var (
	builtinSounds = []string{
		platform.SoundBell,
		platform.SoundPhaseComplete,
		platform.SoundSessionComplete,
	}

	validExts = []string{".mp3", ".ogg", ".flac", ".wav"}

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PresetName()) == "" {
		return errEmptyPreset
	}

	if c.Store.Driver != DriverSQLite && c.Store.Driver != DriverBolt {
		return errUnknownDriver.Fmt(c.Store.Driver)
	}

	if err := c.validateSound(); err != nil {
		return err
	}

	if c.Haptics.Intensity < 0 || c.Haptics.Intensity > 1 {
		return errInvalidIntensity.Fmt(c.Haptics.Intensity)
	}

	if c.FocusMode.Enabled && strings.TrimSpace(c.FocusMode.EnableCmd) == "" {
		return errFocusModeCmd
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level != "" && !slices.Contains(logLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateSound() error {
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return errInvalidVolume.Fmt(c.Sound.Volume)
	}

	cues := map[string]string{
		"start":            c.Sound.Start,
		"phase complete":   c.Sound.PhaseComplete,
		"session complete": c.Sound.SessionComplete,
	}

	for group, sound := range cues {
		if sound == "" {
			continue
		}

		if err := validateCue(sound, group); err != nil {
			return err
		}
	}

	return nil
}

// validateCue accepts a built-in cue name or an existing audio file.
func validateCue(sound, group string) error {
	if filepath.Ext(sound) == "" {
		if slices.Contains(builtinSounds, sound) {
			return nil
		}

		return errUnknownSound.Fmt(group, sound)
	}

	ext := strings.ToLower(filepath.Ext(sound))

	if !slices.Contains(validExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(group, sound)
	}

	return nil
}
