package session

import "github.com/ayoisaiah/lumen/internal/apperr"

var (
	errNoPreset = &apperr.Error{
		Message: "a preset is required to run the timer",
	}

	errNoStore = &apperr.Error{
		Message: "a session store is required to run the timer",
	}

	errRunning = &apperr.Error{
		Message: "stop the timer before you %s",
	}
)
