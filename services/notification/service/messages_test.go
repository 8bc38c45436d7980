package service

import (
	"strings"
	"testing"

	"github.com/madhu363/harvest-wheels-link/lib/models"
)

func sampleRequest() models.BookingRequestNotification {
	return models.BookingRequestNotification{
		BookingID:     "b1",
		VehicleName:   "John Deere Tractor",
		FarmerName:    "John Farmer",
		Task:          "ploughing",
		Date:          "2025-06-12",
		Time:          "08:30",
		Duration:      3,
		FieldLocation: "North paddock",
		TotalAmount:   150,
	}
}

func TestBuildOwnerRequestMessage(t *testing.T) {
	msg := buildOwnerRequestMessage(sampleRequest())

	for _, want := range []string{
		"New booking request for John Deere Tractor!",
		"Farmer: John Farmer",
		"Task: ploughing",
		"Date: 2025-06-12 at 08:30",
		"Duration: 3 hours",
		"Amount: $150",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("owner message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildFarmerConfirmationMessage(t *testing.T) {
	msg := buildFarmerConfirmationMessage(sampleRequest())

	if !strings.Contains(msg, "Booking Confirmation!") {
		t.Fatalf("missing confirmation header:\n%s", msg)
	}
	if !strings.Contains(msg, "John Deere Tractor") {
		t.Fatalf("missing vehicle name:\n%s", msg)
	}
	if !strings.Contains(msg, "accepts or rejects") {
		t.Fatalf("missing follow-up hint:\n%s", msg)
	}
}

func TestBuildStatusMessage(t *testing.T) {
	msg := buildStatusMessage(models.BookingStatusNotification{
		VehicleName: "Case IH Harvester",
		Status:      "accepted",
	})

	if !strings.Contains(msg, "Case IH Harvester") || !strings.Contains(msg, "accepted") {
		t.Fatalf("unexpected status message:\n%s", msg)
	}
}
