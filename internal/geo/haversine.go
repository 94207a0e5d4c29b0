// Package geo computes great-circle distances between coordinates.
package geo

import (
	"math"

	"address-api/internal/models"
)

// EarthRadiusKm is the mean earth radius used by Distance. The earth is
// treated as a sphere, not as the WGS84 ellipsoid.
const EarthRadiusKm = 6373.0

// Distance returns the haversine great-circle distance between a and b in kilometres.
func Distance(a, b models.Coordinate) float64 {
	latA := toRadians(a.Latitude)
	latB := toRadians(b.Latitude)
	dLat := latB - latA
	dLon := toRadians(b.Longitude) - toRadians(a.Longitude)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(latA)*math.Cos(latB)*math.Pow(math.Sin(dLon/2), 2)

	// rounding can push h slightly outside [0, 1]
	h = math.Max(0, math.Min(1, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
