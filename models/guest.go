package models

// Guest lifecycle statuses as the backend reports them.
const (
	StatusReserved   = "reserved"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
)

// Booking categories used by the front desk.
const (
	CategoryCouple    = "couple"
	CategoryCorporate = "corporate"
	CategorySolo      = "solo"
	CategoryFamily    = "family"
)

// SecondaryGuest is the optional second occupant on a stay record.
type SecondaryGuest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	IDProof string `json:"idProof,omitempty"`
}

// ExtraBed is an additional occupant billed separately on the same room.
type ExtraBed struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone,omitempty"`
	IDProof string  `json:"idProof,omitempty"`
	Charge  float64 `json:"charge"`
}

// Guest is a stay record as served by the hotel backend.
// Dates are in backend format (yyyy-mm-dd).
type Guest struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	IDProof       string  `json:"idProof"`
	RoomNumber    string  `json:"roomNumber"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	Status        string  `json:"status"`
	Category      string  `json:"category"`
	Complimentary bool    `json:"complimentary"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`

	SecondaryGuest *SecondaryGuest `json:"secondaryGuest,omitempty"`
	ExtraBeds      []ExtraBed      `json:"extraBeds,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ExtraBedTotal sums the per-bed charges on the record.
func (g Guest) ExtraBedTotal() float64 {
	var sum float64
	for _, b := range g.ExtraBeds {
		sum += b.Charge
	}
	return sum
}

// BalanceDue is the amount still owed on the stay.
func (g Guest) BalanceDue() float64 {
	return g.TotalAmount - g.PaidAmount
}
