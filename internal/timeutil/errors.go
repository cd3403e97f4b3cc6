package timeutil

import "github.com/ayoisaiah/lumen/internal/apperr"

var errParseDate = &apperr.Error{
	Message: "unable to parse date %q",
}
