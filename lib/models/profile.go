package models

import "time"

const (
	RoleFarmer       = "farmer"
	RoleVehicleOwner = "vehicle_owner"
	RoleAdmin        = "admin"
)

type Profile struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Password      string    `json:"password,omitempty"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Phone         string    `json:"phone,omitempty"`
	Location      string    `json:"location,omitempty"`
	Address       string    `json:"address,omitempty"`
	MobileNumber  string    `json:"mobile_number,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	VehicleNumber string    `json:"vehicle_number,omitempty"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
