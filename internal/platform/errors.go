package platform

import "github.com/ayoisaiah/lumen/internal/apperr"

var (
	ErrUnsupported = &apperr.Error{
		Message: "%s is not supported on this platform",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown sound: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidVolume = &apperr.Error{
		Message: "volume must be between 0 and 1, got %v",
	}

	errEmptyCommand = &apperr.Error{
		Message: "focus mode command %q has no program to run",
	}

	errFocusCommand = &apperr.Error{
		Message: "focus mode command %q failed",
	}
)
