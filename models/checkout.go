package models

// Checkout draft states.
const (
	DraftIdle       = "idle"
	DraftDrafting   = "drafting"
	DraftSubmitting = "submitting"
)

// Payment methods accepted at the desk.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentUPI      = "upi"
)

// CheckoutDraft is the transient checkout form for one guest. It exists
// only between "begin checkout" and submit/cancel and is never persisted.
// CheckoutDate is kept in display format (dd-mm-yyyy).
type CheckoutDraft struct {
	ID                string  `json:"id"`
	GuestID           int     `json:"guestId"`
	GuestName         string  `json:"guestName"`
	State             string  `json:"state"`
	CheckoutDate      string  `json:"checkoutDate"`
	OriginalTotal     float64 `json:"originalTotal"`
	AdditionalCharges float64 `json:"additionalCharges"`
	FinalAmount       float64 `json:"finalAmount"`
	PaymentMethod     string  `json:"paymentMethod"`
	Notes             string  `json:"notes,omitempty"`

	// FinalOverridden marks a direct edit of FinalAmount; the
	// originalTotal+additionalCharges derivation stays suspended until
	// additionalCharges changes again.
	FinalOverridden bool `json:"finalOverridden"`
}
