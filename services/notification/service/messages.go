package service

import (
	"fmt"

	"github.com/madhu363/harvest-wheels-link/lib/models"
)

func buildOwnerRequestMessage(n models.BookingRequestNotification) string {
	return fmt.Sprintf(
		"New booking request for %s!\n\nFarmer: %s\nTask: %s\nDate: %s at %s\nLocation: %s\nDuration: %d hours\nAmount: $%g\n\nPlease check your dashboard to accept or reject this request.",
		n.VehicleName, n.FarmerName, n.Task, n.Date, n.Time, n.FieldLocation, n.Duration, n.TotalAmount)
}

func buildFarmerConfirmationMessage(n models.BookingRequestNotification) string {
	return fmt.Sprintf(
		"Booking Confirmation!\n\nYour booking request for %s has been submitted.\n\nDetails:\nDate: %s at %s\nTask: %s\nLocation: %s\nDuration: %d hours\nAmount: $%g\n\nYou will receive another SMS when the owner accepts or rejects your request.",
		n.VehicleName, n.Date, n.Time, n.Task, n.FieldLocation, n.Duration, n.TotalAmount)
}

func buildStatusMessage(n models.BookingStatusNotification) string {
	return fmt.Sprintf("Booking Update!\n\nYour booking request for %s has been %s.",
		n.VehicleName, n.Status)
}
