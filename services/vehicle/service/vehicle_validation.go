package service

import "github.com/madhu363/harvest-wheels-link/lib/models"

// validateVehicleInput checks the fields gin binding cannot express.
// Returns an empty string when the input is acceptable.
func validateVehicleInput(pricePerHour float64, position *models.GeoPoint) string {
	if pricePerHour <= 0 {
		return "price_per_hour must be positive"
	}
	if position != nil {
		if position.Latitude < -90 || position.Latitude > 90 {
			return "latitude out of range"
		}
		if position.Longitude < -180 || position.Longitude > 180 {
			return "longitude out of range"
		}
	}
	return ""
}
