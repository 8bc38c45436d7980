package service

import "testing"

func TestValidateProfileSetup_OwnerFields(t *testing.T) {
	if reason := validateProfileSetup("vehicle_owner", "KA-0042", "KA 01 AB 1234"); reason != "" {
		t.Fatalf("expected valid, got reason=%q", reason)
	}
}

func TestValidateProfileSetup_FarmerWithLicense(t *testing.T) {
	reason := validateProfileSetup("farmer", "KA-0042", "")
	if reason != "license_number is only valid for vehicle owners" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateProfileSetup_FarmerWithVehicleNumber(t *testing.T) {
	reason := validateProfileSetup("farmer", "", "KA 01 AB 1234")
	if reason != "vehicle_number is only valid for vehicle owners" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestValidateProfileSetup_FarmerContactOnly(t *testing.T) {
	if reason := validateProfileSetup("farmer", "", ""); reason != "" {
		t.Fatalf("expected valid, got reason=%q", reason)
	}
}
