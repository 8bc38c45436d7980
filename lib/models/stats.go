package models

type DashboardStats struct {
	TotalBookings    int     `json:"totalBookings"`
	PendingBookings  int     `json:"pendingBookings"`
	AcceptedBookings int     `json:"acceptedBookings"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

type FleetStats struct {
	TotalVehicles        int            `json:"totalVehicles"`
	AvailableVehicles    int            `json:"availableVehicles"`
	VehicleTypeBreakdown map[string]int `json:"vehicleTypeBreakdown"`
}
