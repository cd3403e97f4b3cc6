package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/platform"
)

const (
	keyTimerPreset          = "timer.preset"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keySoundEnabled         = "sound.enabled"
	keySoundVolume          = "sound.volume"
	keySoundStart           = "sound.start"
	keySoundPhaseComplete   = "sound.phase_complete"
	keySoundSessionComplete = "sound.session_complete"
	keyFocusModeEnabled     = "focus_mode.enabled"
	keyFocusModeEnableCmd   = "focus_mode.enable_cmd"
	keyFocusModeDisableCmd  = "focus_mode.disable_cmd"
	keyHapticsEnabled       = "haptics.enabled"
	keyHapticsIntensity     = "haptics.intensity"
	keyStoreDriver          = "store.driver"
	keyLogLevel             = "log.level"
	keyLogDebug             = "log.debug"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing a file of defaults if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyTimerPreset, models.PomodoroPreset)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, false)
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keySoundVolume, 0.8)
	v.SetDefault(keySoundStart, platform.SoundBell)
	v.SetDefault(keySoundPhaseComplete, platform.SoundPhaseComplete)
	v.SetDefault(keySoundSessionComplete, platform.SoundSessionComplete)
	v.SetDefault(keyFocusModeEnabled, false)
	v.SetDefault(keyFocusModeEnableCmd, "")
	v.SetDefault(keyFocusModeDisableCmd, "")
	v.SetDefault(keyHapticsEnabled, false)
	v.SetDefault(keyHapticsIntensity, 0.5)
	v.SetDefault(keyStoreDriver, DriverSQLite)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogDebug, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
}

// writePromptOptions creates the config file with the prompt answers on top
// of the defaults.
func writePromptOptions(configPath string, opts PromptOptions) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	v.Set(keyTimerPreset, opts.Preset)
	v.Set(keySoundEnabled, opts.Sound)
	v.Set(keyNotificationsEnabled, opts.Notifications)

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
