package models

import "time"

type Vehicle struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Description  string    `json:"description,omitempty"`
	PricePerHour float64   `json:"price_per_hour"`
	Location     string    `json:"location"`
	Position     *GeoPoint `json:"position,omitempty"`
	IsAvailable  bool      `json:"is_available"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VehicleSnapshot is the slice of a vehicle row the booking flow needs.
// Cached in Redis with a short TTL.
type VehicleSnapshot struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	OwnerID      string  `json:"owner_id"`
	PricePerHour float64 `json:"price_per_hour"`
	IsAvailable  bool    `json:"is_available"`
}
