package service

import "github.com/madhu363/harvest-wheels-link/lib/models"

// validateProfileSetup enforces the role-conditional fields: license and
// vehicle registration numbers belong to vehicle owners only. Returns an
// empty string when the update is acceptable.
func validateProfileSetup(role, licenseNumber, vehicleNumber string) string {
	if role == models.RoleVehicleOwner {
		return ""
	}
	if licenseNumber != "" {
		return "license_number is only valid for vehicle owners"
	}
	if vehicleNumber != "" {
		return "vehicle_number is only valid for vehicle owners"
	}
	return ""
}
