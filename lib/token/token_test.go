package token

import (
	"testing"

	"github.com/spf13/viper"
)

func TestGenerateAndValidateToken(t *testing.T) {
	viper.Set("JWT_SECRET", "test-secret")

	tokenString, err := GenerateToken("user-1", "Ravi", "farmer")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	valid, err := ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if !valid {
		t.Fatalf("expected token to be valid")
	}
}

func TestGetUserFromToken(t *testing.T) {
	viper.Set("JWT_SECRET", "test-secret")

	tokenString, err := GenerateToken("owner-7", "Meena", "vehicle_owner")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	user, err := GetUserFromToken(tokenString)
	if err != nil {
		t.Fatalf("failed to extract user: %v", err)
	}
	if user.UserID != "owner-7" {
		t.Fatalf("expected user id owner-7, got %q", user.UserID)
	}
	if user.UserName != "Meena" {
		t.Fatalf("expected user name Meena, got %q", user.UserName)
	}
	if user.Role != "vehicle_owner" {
		t.Fatalf("expected role vehicle_owner, got %q", user.Role)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	viper.Set("JWT_SECRET", "test-secret")
	tokenString, err := GenerateToken("user-1", "Ravi", "farmer")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	viper.Set("JWT_SECRET", "another-secret")
	if _, err := ValidateToken(tokenString); err == nil {
		t.Fatalf("expected validation to fail with wrong secret")
	}
}
