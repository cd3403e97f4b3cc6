package models

import "github.com/ayoisaiah/lumen/internal/apperr"

var (
	ErrEmptyTitle = &apperr.Error{
		Message: "task title cannot be empty",
	}

	errTitleTooLong = &apperr.Error{
		Message: "task title cannot be longer than %d characters",
	}

	ErrEmptyName = &apperr.Error{
		Message: "name cannot be empty",
	}

	errNameTooLong = &apperr.Error{
		Message: "name cannot be longer than %d characters",
	}

	ErrInvalidDuration = &apperr.Error{
		Message: "%s duration must be a whole number of seconds greater than zero",
	}

	ErrInvalidRounds = &apperr.Error{
		Message: "round count must be greater than zero",
	}

	ErrEmptyPlantType = &apperr.Error{
		Message: "plant type cannot be empty",
	}
)
