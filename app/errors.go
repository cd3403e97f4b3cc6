package app

import "github.com/ayoisaiah/lumen/internal/apperr"

var (
	errUnknownPreset = &apperr.Error{
		Message: "no preset named %q (see 'lumen preset list')",
	}

	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errEditorNotSet = &apperr.Error{
		Message: "no editor found: set $VISUAL or $EDITOR",
	}
)
