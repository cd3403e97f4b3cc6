package config

import "github.com/ayoisaiah/lumen/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPromptFailed = &apperr.Error{
		Message: "user prompt failed",
	}

	errEmptyPreset = &apperr.Error{
		Message: "timer preset cannot be empty",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver %q (must be sqlite or bolt)",
	}

	errInvalidVolume = &apperr.Error{
		Message: "sound volume must be between 0 and 1, got %v",
	}

	errInvalidIntensity = &apperr.Error{
		Message: "haptics intensity must be between 0 and 1, got %v",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown %s sound: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q",
	}

	errFocusModeCmd = &apperr.Error{
		Message: "focus mode is enabled but no enable_cmd is set",
	}
)
