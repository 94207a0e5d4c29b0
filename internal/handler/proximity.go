package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"address-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProximityHandler handles radius search requests
type ProximityHandler struct {
	service ProximityService
	log     zerolog.Logger
}

// ProximityService interface for dependency injection
type ProximityService interface {
	FindWithin(context.Context, models.Coordinate, float64) ([]models.Address, error)
}

// NewProximityHandler creates a new proximity handler
func NewProximityHandler(svc ProximityService, log zerolog.Logger) *ProximityHandler {
	return &ProximityHandler{service: svc, log: log}
}

// FindWithin handles GET /get_address requests
//
//	@Summary		Addresses within a distance of a point
//	@Description	Provides all addresses in range of the given distance (km) from the point of given latitude and longitude
//	@Tags			GET
//	@Produce		json
//	@Param			latitude	query		number	true	"Latitude of the reference point"	minimum(-90)	maximum(90)
//	@Param			longitude	query		number	true	"Longitude of the reference point"	minimum(-180)	maximum(180)
//	@Param			distance	query		number	true	"Search radius in kilometres"		minimum(0)
//	@Success		200			{array}		models.Address
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/get_address [get]
func (h *ProximityHandler) FindWithin(c *gin.Context) {
	lat, err := floatQuery(c, "latitude")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	lon, err := floatQuery(c, "longitude")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	distance, err := floatQuery(c, "distance")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	addresses, err := h.service.FindWithin(c.Request.Context(), models.Coordinate{Latitude: lat, Longitude: lon}, distance)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

func floatQuery(c *gin.Context, key string) (float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return 0, fmt.Errorf("missing required query parameter '%s'", key)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format", key)
	}

	return value, nil
}
