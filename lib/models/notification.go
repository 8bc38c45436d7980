package models

import "time"

// BookingRequestNotification is produced on the booking_requests topic when
// a farmer submits a booking. It carries both parties' contact details so
// the notification service never has to query the profile store.
type BookingRequestNotification struct {
	BookingID     string  `json:"booking_id"`
	VehicleID     string  `json:"vehicle_id"`
	VehicleName   string  `json:"vehicle_name"`
	OwnerID       string  `json:"owner_id"`
	OwnerEmail    string  `json:"owner_email"`
	OwnerMobile   string  `json:"owner_mobile"`
	FarmerID      string  `json:"farmer_id"`
	FarmerName    string  `json:"farmer_name"`
	FarmerMobile  string  `json:"farmer_mobile"`
	Task          string  `json:"task"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Duration      int     `json:"duration"`
	FieldLocation string  `json:"field_location"`
	TotalAmount   float64 `json:"total_amount"`
}

// BookingStatusNotification is produced on the booking_updates topic when
// an owner accepts or rejects a request.
type BookingStatusNotification struct {
	BookingID    string `json:"booking_id"`
	FarmerID     string `json:"farmer_id"`
	FarmerMobile string `json:"farmer_mobile"`
	VehicleName  string `json:"vehicle_name"`
	Status       string `json:"status"`
}

// DeliveryRecord is one notification delivery attempt, persisted to the
// notification_log collection.
type DeliveryRecord struct {
	BookingID string    `json:"booking_id" bson:"booking_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Channel   string    `json:"channel" bson:"channel"`
	Recipient string    `json:"recipient" bson:"recipient"`
	Status    string    `json:"status" bson:"status"`
	Error     string    `json:"error,omitempty" bson:"error,omitempty"`
	SentAt    time.Time `json:"sent_at" bson:"sent_at"`
}
