package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"address-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AddressHandler handles address create, read, update and delete requests
type AddressHandler struct {
	service AddressService
	log     zerolog.Logger
}

// AddressService interface for dependency injection
type AddressService interface {
	ListAddresses(context.Context) ([]models.Address, error)
	CreateAddress(context.Context, models.Address) (*models.Address, error)
	UpdateAddress(context.Context, models.AddressUpdate) (*models.Address, error)
	DeleteAddress(context.Context, int64) error
}

// CreateAddressRequest is the body of POST /create_address
type CreateAddressRequest struct {
	Latitude    *float64 `json:"latitude" binding:"required" example:"2.3123"`
	Longitude   *float64 `json:"longitude" binding:"required" example:"1.3145"`
	Name        string   `json:"name" binding:"required" example:"Super cool place"`
	Description *string  `json:"description" example:"This place is super cool"`
} // @name CreateAddressRequest

// UpdateAddressRequest is the body of PUT /update_address. Omitted fields keep
// their stored value; a null new_description clears the description.
type UpdateAddressRequest struct {
	ID             *int64                   `json:"id" binding:"required" example:"1"`
	NewLatitude    models.Optional[float64] `json:"new_latitude" swaggertype:"number" example:"2.3123"`
	NewLongitude   models.Optional[float64] `json:"new_longitude" swaggertype:"number" example:"1.3145"`
	NewName        models.Optional[string]  `json:"new_name" swaggertype:"string" example:"Not that cool place"`
	NewDescription models.Optional[string]  `json:"new_description" swaggertype:"string" example:"This place used to be cool"`
} // @name UpdateAddressRequest

// NewAddressHandler creates a new address handler
func NewAddressHandler(svc AddressService, log zerolog.Logger) *AddressHandler {
	return &AddressHandler{service: svc, log: log}
}

// ListAddresses handles GET /get_all_addresses requests
//
//	@Summary	List all stored addresses
//	@Tags		GET
//	@Produce	json
//	@Success	200	{array}		models.Address
//	@Failure	500	{object}	ErrorResponse
//	@Router		/get_all_addresses [get]
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.service.ListAddresses(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// CreateAddress handles POST /create_address requests
//
//	@Summary	Add a new address
//	@Tags		CREATE
//	@Accept		json
//	@Produce	json
//	@Param		address	body		CreateAddressRequest	true	"Address to create"
//	@Success	200		{object}	SuccessResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/create_address [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	_, err := h.service.CreateAddress(c.Request.Context(), models.Address{
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, models.ErrStoreUnavailable) {
			h.log.Error().Err(err).Msg("failed to create address")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Record couldn't be added, no response from database."})
			return
		}
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: "Address created!"})
}

// UpdateAddress handles PUT /update_address requests
//
//	@Summary	Change fields of an existing address
//	@Tags		UPDATE
//	@Accept		json
//	@Produce	json
//	@Param		update	body		UpdateAddressRequest	true	"Fields to change"
//	@Success	200		{object}	SuccessResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/update_address [put]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	_, err := h.service.UpdateAddress(c.Request.Context(), models.AddressUpdate{
		ID:             *req.ID,
		NewLatitude:    req.NewLatitude,
		NewLongitude:   req.NewLongitude,
		NewName:        req.NewName,
		NewDescription: req.NewDescription,
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: notExistMessage(*req.ID)})
			return
		}
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: "Address updated!"})
}

// DeleteAddress handles DELETE /delete_address/:id requests
//
//	@Summary	Remove an address
//	@Tags		DELETE
//	@Produce	json
//	@Param		id	path		int	true	"Address id"
//	@Success	200	{object}	SuccessResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/delete_address/{id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "id must be an integer"})
		return
	}

	if err := h.service.DeleteAddress(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: notExistMessage(id)})
			return
		}
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: "Address deleted!"})
}

func notExistMessage(id int64) string {
	return fmt.Sprintf("ID %d : Does not exist", id)
}
