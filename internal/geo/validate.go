package geo

import (
	"math"

	"address-api/internal/models"
)

// Coordinate domain limits, in degrees.
const (
	MaxLatitude  = 90.0
	MaxLongitude = 180.0
)

// ValidateCoordinate checks that c lies within [-90, 90] x [-180, 180].
// Both bounds are inclusive.
func ValidateCoordinate(c models.Coordinate) error {
	if err := ValidateLatitude(c.Latitude); err != nil {
		return err
	}
	return ValidateLongitude(c.Longitude)
}

// ValidateLatitude rejects NaN and values outside [-90, 90].
func ValidateLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < -MaxLatitude || lat > MaxLatitude {
		return models.NewValidationError("latitude", "must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude rejects NaN and values outside [-180, 180].
func ValidateLongitude(lon float64) error {
	if math.IsNaN(lon) || lon < -MaxLongitude || lon > MaxLongitude {
		return models.NewValidationError("longitude", "must be between -180 and 180")
	}
	return nil
}

// ValidateRadius rejects negative and non-finite search radii.
func ValidateRadius(km float64) error {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return models.NewValidationError("distance", "must be a non-negative number")
	}
	return nil
}
