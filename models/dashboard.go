package models

// DashboardReport is the revenue/metrics report served by the backend
// (GET /reports/dashboard).
type DashboardReport struct {
	RevenueToday   float64 `json:"revenueToday"`
	RevenueMonth   float64 `json:"revenueMonth"`
	CheckInsToday  int     `json:"checkInsToday"`
	CheckOutsToday int     `json:"checkOutsToday"`
	PendingAmount  float64 `json:"pendingAmount"`
}

// OccupancySummary is derived locally from the cached guest and room lists.
type OccupancySummary struct {
	TotalRooms         int     `json:"totalRooms"`
	OccupiedRooms      int     `json:"occupiedRooms"`
	AvailableRooms     int     `json:"availableRooms"`
	OccupancyPercent   float64 `json:"occupancyPercent"`
	CheckedInGuests    int     `json:"checkedInGuests"`
	ReservedGuests     int     `json:"reservedGuests"`
	OutstandingBalance float64 `json:"outstandingBalance"`
}

// Dashboard is what the station serves to the desk UI: the backend report
// merged with the locally derived occupancy figures and the recent
// activity feed.
type Dashboard struct {
	Report     DashboardReport  `json:"report"`
	Occupancy  OccupancySummary `json:"occupancy"`
	Activities []Activity       `json:"activities"`
}
