package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"

	"funding-sim/internal/api/models"
	"funding-sim/internal/correlation"
	"funding-sim/internal/curve"
	"funding-sim/internal/model"
)

func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondSimulationError maps setup errors to 400s and anything else to a 500.
func respondSimulationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, curve.ErrInvalidCurve):
		respondError(c, http.StatusBadRequest, models.CodeInvalidCurve, err.Error(), nil)
	case errors.Is(err, correlation.ErrNonPositiveSemiDefinite):
		respondError(c, http.StatusBadRequest, models.CodeNonPSDCorrelation, err.Error(), nil)
	case errors.Is(err, model.ErrInvalidParameter), errors.Is(err, correlation.ErrMalformed):
		respondError(c, http.StatusBadRequest, models.CodeInvalidParameter, err.Error(), paramDetails(err))
	default:
		log.WithError(err).Error("simulation failed")
		respondError(c, http.StatusInternalServerError, models.CodeSimulationError, err.Error(), nil)
	}
}

// paramDetails lists the offending fields of a validation error, if any.
func paramDetails(err error) map[string]interface{} {
	errs := []error{err}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if all := multierr.Errors(e); len(all) > 1 {
			errs = all
			break
		}
	}

	fields := map[string]interface{}{}
	for _, e := range errs {
		var pe *model.ParamError
		if errors.As(e, &pe) {
			fields[pe.Field] = pe.Reason
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return map[string]interface{}{"fields": fields}
}
