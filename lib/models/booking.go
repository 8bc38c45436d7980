package models

import "time"

const (
	BookingStatusPending  = "pending"
	BookingStatusAccepted = "accepted"
	BookingStatusRejected = "rejected"
	BookingStatusComplete = "completed"
)

var TaskTypes = []string{
	"ploughing",
	"sowing",
	"harvesting",
	"manuring",
	"cultivation",
	"irrigation",
	"other",
}

type Booking struct {
	ID            string    `json:"id"`
	FarmerID      string    `json:"farmer_id"`
	VehicleID     string    `json:"vehicle_id"`
	FarmerName    string    `json:"farmer_name,omitempty"`
	VehicleName   string    `json:"vehicle_name,omitempty"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Duration      int       `json:"duration"`
	FieldLocation string    `json:"field_location"`
	FieldPosition *GeoPoint `json:"field_position,omitempty"`
	Task          string    `json:"task"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookingInput is the request body a farmer submits to book a vehicle.
type BookingInput struct {
	VehicleID     string    `json:"vehicle_id" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	Time          string    `json:"time" binding:"required"`
	Duration      int       `json:"duration" binding:"required"`
	FieldLocation string    `json:"field_location" binding:"required"`
	FieldPosition *GeoPoint `json:"field_position,omitempty"`
	Task          string    `json:"task" binding:"required"`
	Notes         string    `json:"notes,omitempty"`
}
