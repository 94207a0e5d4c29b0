package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"address-api/internal/geo"
	"address-api/internal/models"

	"github.com/rs/zerolog"
)

// AddressService contains the business rules for creating, changing and removing addresses
type AddressService struct {
	repo AddressRepository
	log  zerolog.Logger
}

// AddressRepository interface for dependency injection
type AddressRepository interface {
	ListAddresses(ctx context.Context) ([]models.Address, error)
	GetAddress(ctx context.Context, id int64) (*models.Address, error)
	CreateAddress(ctx context.Context, addr *models.Address) error
	UpdateAddress(ctx context.Context, addr models.Address) error
	DeleteAddress(ctx context.Context, id int64) error
}

// NewAddressService creates a new address service
func NewAddressService(repo AddressRepository, log zerolog.Logger) *AddressService {
	return &AddressService{repo: repo, log: log.With().Str("component", "address_service").Logger()}
}

// ListAddresses returns every stored address
func (s *AddressService) ListAddresses(ctx context.Context) ([]models.Address, error) {
	addresses, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return nil, storeError("failed to list addresses", err)
	}
	return addresses, nil
}

// CreateAddress validates addr and persists it. The returned address carries the assigned id.
func (s *AddressService) CreateAddress(ctx context.Context, addr models.Address) (*models.Address, error) {
	if err := geo.ValidateCoordinate(addr.Coordinate()); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if strings.TrimSpace(addr.Name) == "" {
		return nil, fmt.Errorf("service: %w", models.NewValidationError("name", "is required"))
	}

	addr.ID = 0
	if err := s.repo.CreateAddress(ctx, &addr); err != nil {
		return nil, storeError("failed to create address", err)
	}

	s.log.Info().Int64("id", addr.ID).Str("name", addr.Name).Msg("address created")
	return &addr, nil
}

// UpdateAddress applies a partial update to the stored address.
//
// Absent fields and empty strings keep the stored value. A null description
// clears it; null is rejected for the required fields.
func (s *AddressService) UpdateAddress(ctx context.Context, update models.AddressUpdate) (*models.Address, error) {
	if err := validateUpdate(update); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	addr, err := s.repo.GetAddress(ctx, update.ID)
	if err != nil {
		return nil, storeError("failed to load address", err)
	}

	applyUpdate(addr, update)

	if err := s.repo.UpdateAddress(ctx, *addr); err != nil {
		return nil, storeError("failed to update address", err)
	}

	s.log.Info().Int64("id", addr.ID).Msg("address updated")
	return addr, nil
}

// DeleteAddress removes the address with the given id
func (s *AddressService) DeleteAddress(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAddress(ctx, id); err != nil {
		return storeError("failed to delete address", err)
	}

	s.log.Info().Int64("id", id).Msg("address deleted")
	return nil
}

func validateUpdate(u models.AddressUpdate) error {
	if u.NewLatitude.Null {
		return models.NewValidationError("new_latitude", "cannot be null")
	}
	if u.NewLongitude.Null {
		return models.NewValidationError("new_longitude", "cannot be null")
	}
	if u.NewName.Null {
		return models.NewValidationError("new_name", "cannot be null")
	}
	if u.NewLatitude.Present() {
		if err := geo.ValidateLatitude(u.NewLatitude.Value); err != nil {
			return err
		}
	}
	if u.NewLongitude.Present() {
		if err := geo.ValidateLongitude(u.NewLongitude.Value); err != nil {
			return err
		}
	}
	return nil
}

func applyUpdate(addr *models.Address, u models.AddressUpdate) {
	if u.NewLatitude.Present() {
		addr.Latitude = u.NewLatitude.Value
	}
	if u.NewLongitude.Present() {
		addr.Longitude = u.NewLongitude.Value
	}
	if u.NewName.Present() && strings.TrimSpace(u.NewName.Value) != "" {
		addr.Name = u.NewName.Value
	}
	switch {
	case u.NewDescription.Null:
		addr.Description = nil
	case u.NewDescription.Present() && u.NewDescription.Value != "":
		description := u.NewDescription.Value
		addr.Description = &description
	}
}

// storeError keeps not-found errors as they are and marks everything else
// as a store failure.
func storeError(msg string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("service: %s: %w", msg, err)
	}
	return fmt.Errorf("service: %s: %w: %w", msg, models.ErrStoreUnavailable, err)
}
