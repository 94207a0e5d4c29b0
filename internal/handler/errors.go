package handler

import (
	"errors"
	"net/http"

	"address-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"ID 1 : Does not exist"`
} // @name ErrorResponse

// SuccessResponse is the body of successful write requests
type SuccessResponse struct {
	Success string `json:"Success" example:"Address created!"`
} // @name SuccessResponse

func writeError(c *gin.Context, log zerolog.Logger, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: verr.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "address not found"})
	case errors.Is(err, models.ErrStoreUnavailable):
		log.Error().Err(err).Msg("address store unavailable")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "No response from database."})
	default:
		log.Error().Err(err).Msg("unexpected error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// writeBindError answers 422 for bodies that decoded but failed binding
// rules and 400 for bodies that could not be decoded at all.
func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "missing required fields", "fields": fields})
		return
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}
