package service

import (
	"context"
	"fmt"

	"address-api/internal/geo"
	"address-api/internal/models"

	"github.com/rs/zerolog"
)

// ProximityService finds stored addresses within a radius of a reference point.
//
// Every query reads the whole address table and filters it in memory, so the
// cost grows linearly with the number of stored addresses.
type ProximityService struct {
	repo     ProximityRepository
	recorder ProximityRecorder
	log      zerolog.Logger
}

// ProximityRepository interface for dependency injection
type ProximityRepository interface {
	ListAddresses(ctx context.Context) ([]models.Address, error)
}

// ProximityRecorder receives the size of every completed scan
type ProximityRecorder interface {
	ObserveProximityQuery(scanned, matched int)
}

// NewProximityService creates a new proximity service
func NewProximityService(repo ProximityRepository, recorder ProximityRecorder, log zerolog.Logger) *ProximityService {
	return &ProximityService{
		repo:     repo,
		recorder: recorder,
		log:      log.With().Str("component", "proximity_service").Logger(),
	}
}

// FindWithin returns the addresses whose great-circle distance to reference
// is at most maxDistanceKm. The computed distance is not part of the result.
func (s *ProximityService) FindWithin(ctx context.Context, reference models.Coordinate, maxDistanceKm float64) ([]models.Address, error) {
	if err := geo.ValidateCoordinate(reference); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := geo.ValidateRadius(maxDistanceKm); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	addresses, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return nil, storeError("failed to load addresses", err)
	}

	matches := make([]models.Address, 0, len(addresses))
	for _, addr := range addresses {
		if geo.Distance(reference, addr.Coordinate()) <= maxDistanceKm {
			matches = append(matches, addr)
		}
	}

	s.recorder.ObserveProximityQuery(len(addresses), len(matches))
	s.log.Debug().
		Float64("latitude", reference.Latitude).
		Float64("longitude", reference.Longitude).
		Float64("distance_km", maxDistanceKm).
		Int("scanned", len(addresses)).
		Int("matched", len(matches)).
		Msg("proximity query")

	return matches, nil
}
