package tasks

import "github.com/ayoisaiah/lumen/internal/apperr"

var errTaskNotFound = &apperr.Error{
	Message: "no task matches %q",
}
