package models

// Address represents a named geographic point stored by the service.
type Address struct {
	ID          int64   `json:"id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
} // @name Address

// Coordinate returns the position of the address.
func (a Address) Coordinate() Coordinate {
	return Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AddressUpdate describes a partial update of a stored address.
type AddressUpdate struct {
	ID             int64             `json:"id"`
	NewLatitude    Optional[float64] `json:"new_latitude" swaggertype:"number"`
	NewLongitude   Optional[float64] `json:"new_longitude" swaggertype:"number"`
	NewName        Optional[string]  `json:"new_name" swaggertype:"string"`
	NewDescription Optional[string]  `json:"new_description" swaggertype:"string"`
} // @name AddressUpdate
