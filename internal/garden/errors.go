package garden

import "github.com/ayoisaiah/lumen/internal/apperr"

var errUnknownPlantType = &apperr.Error{
	Message: "unknown plant type %q",
}
