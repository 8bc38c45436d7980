package service

import (
	"testing"

	"github.com/madhu363/harvest-wheels-link/lib/models"
)

func TestValidateVehicleInput_OK(t *testing.T) {
	if reason := validateVehicleInput(50, nil); reason != "" {
		t.Fatalf("expected valid, got reason=%q", reason)
	}
}

func TestValidateVehicleInput_WithPosition(t *testing.T) {
	pos := &models.GeoPoint{Latitude: 12.97, Longitude: 77.59}
	if reason := validateVehicleInput(30, pos); reason != "" {
		t.Fatalf("expected valid, got reason=%q", reason)
	}
}

func TestValidateVehicleInput_ZeroPrice(t *testing.T) {
	reason := validateVehicleInput(0, nil)
	if reason != "price_per_hour must be positive" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateVehicleInput_NegativePrice(t *testing.T) {
	reason := validateVehicleInput(-10, nil)
	if reason != "price_per_hour must be positive" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateVehicleInput_BadLatitude(t *testing.T) {
	pos := &models.GeoPoint{Latitude: 91, Longitude: 0}
	if reason := validateVehicleInput(10, pos); reason != "latitude out of range" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateVehicleInput_BadLongitude(t *testing.T) {
	pos := &models.GeoPoint{Latitude: 0, Longitude: -181}
	if reason := validateVehicleInput(10, pos); reason != "longitude out of range" {
		t.Fatalf("unexpected reason %q", reason)
	}
}
