package models

// Room statuses used by the backend inventory.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
)

// Room is an inventory unit owned by the backend. The station holds a
// read-mostly cached copy; when occupied, the current guest and stay dates
// are denormalized onto the record.
type Room struct {
	ID         int     `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	Type       string  `json:"type"`
	Floor      string  `json:"floor,omitempty"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`

	CurrentGuest string `json:"currentGuest,omitempty"`
	CheckInDate  string `json:"checkInDate,omitempty"`
	CheckOutDate string `json:"checkOutDate,omitempty"`
}
