package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Respond maps a business error onto its HTTP status. Errors outside the
// taxonomy surface as a non-specific 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, "Invalid request.")
	case KindConflict:
		BadRequest(c, be.Code, "Already exists.")
	case KindNotFound:
		NotFound(c, be.Code, "Not found.")
	default:
		Internal(c, "internal_error", "Something went wrong.")
	}
}
