package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

// MinBookingAmount is the smallest accepted total for a non-complimentary
// booking, extra-bed charges included.
const MinBookingAmount = 1800

// AddGuestRequest is the add-guest form as the desk UI submits it. Dates
// arrive in display format (dd-mm-yyyy).
type AddGuestRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	IDProofType   string  `json:"idProofType"`
	IDProofNumber string  `json:"idProofNumber"`
	RoomNumber    string  `json:"roomNumber"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	Category      string  `json:"category"`
	Complimentary bool    `json:"complimentary"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`

	SecondaryGuest *SecondaryGuestInput `json:"secondaryGuest,omitempty"`
	ExtraBeds      []ExtraBedInput      `json:"extraBeds,omitempty"`
}

// SecondaryGuestInput is the collapsible second-occupant section of the
// form; it only counts when Enabled is set.
type SecondaryGuestInput struct {
	Enabled       bool   `json:"enabled"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	IDProofType   string `json:"idProofType"`
	IDProofNumber string `json:"idProofNumber"`
}

type ExtraBedInput struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	IDProofType   string  `json:"idProofType"`
	IDProofNumber string  `json:"idProofNumber"`
	Charge        float64 `json:"charge"`
}

// ExtraBedTotal sums the per-bed charges entered on the form.
func (r AddGuestRequest) ExtraBedTotal() float64 {
	var sum float64
	for _, b := range r.ExtraBeds {
		sum += b.Charge
	}
	return sum
}

// GuestValidator runs the add-guest validation gate: checks run in a fixed
// order and the first failure wins, so the desk sees one field message at
// a time.
type GuestValidator struct {
	validate *validator.Validate
}

func NewGuestValidator() *GuestValidator {
	v := validator.New()
	// staydate: empty or a real dd-mm-yyyy calendar date in the booking window
	_ = v.RegisterValidation("staydate", func(fl validator.FieldLevel) bool {
		return utils.IsValidDisplayDate(fl.Field().String())
	})
	return &GuestValidator{validate: v}
}

// ValidateAdd runs the gate against the form. roomHeld answers whether a
// checked-in guest already holds a room number; it is consulted last among
// the structural checks, against the current cache only.
func (v *GuestValidator) ValidateAdd(req AddGuestRequest, roomHeld func(string) bool) error {
	if err := v.validate.Var(req.Name, "required"); err != nil {
		return &ValidationError{Field: "name", Message: "guest name is required"}
	}
	if err := v.validate.Var(req.Phone, "required"); err != nil {
		return &ValidationError{Field: "phone", Message: "phone number is required"}
	}
	if err := v.validate.Var(req.IDProofNumber, "required"); err != nil {
		return &ValidationError{Field: "idProofNumber", Message: "id proof number is required"}
	}
	if err := v.validate.Var(req.RoomNumber, "required"); err != nil {
		return &ValidationError{Field: "roomNumber", Message: "room number is required"}
	}
	if err := v.validate.Var(req.Email, "omitempty,email"); err != nil {
		return &ValidationError{Field: "email", Message: "email address is not valid"}
	}

	if req.SecondaryGuest != nil && req.SecondaryGuest.Enabled {
		if err := v.validate.Var(req.SecondaryGuest.Name, "required"); err != nil {
			return &ValidationError{Field: "secondaryGuest.name", Message: "secondary guest name is required"}
		}
	}

	for i, bed := range req.ExtraBeds {
		if err := v.validate.Var(bed.Name, "required"); err != nil {
			return &ValidationError{
				Field:   fmt.Sprintf("extraBeds[%d].name", i),
				Message: "extra bed guest name is required",
			}
		}
		if err := v.validate.Var(bed.Charge, "gt=0"); err != nil {
			return &ValidationError{
				Field:   fmt.Sprintf("extraBeds[%d].charge", i),
				Message: "extra bed charge must be greater than zero",
			}
		}
	}

	if err := v.validate.Var(req.CheckInDate, "staydate"); err != nil {
		return &ValidationError{Field: "checkInDate", Message: "check-in date must be a valid dd-mm-yyyy date"}
	}
	if err := v.validate.Var(req.CheckOutDate, "staydate"); err != nil {
		return &ValidationError{Field: "checkOutDate", Message: "check-out date must be a valid dd-mm-yyyy date"}
	}
	if !utils.StayOrderOK(req.CheckInDate, req.CheckOutDate) {
		return &ValidationError{Field: "checkOutDate", Message: "check-out date cannot be before check-in date"}
	}

	if roomHeld != nil && roomHeld(req.RoomNumber) {
		return &ValidationError{
			Field:   "roomNumber",
			Message: fmt.Sprintf("room %s is already occupied by a checked-in guest", req.RoomNumber),
		}
	}

	if !req.Complimentary {
		if combined := req.TotalAmount + req.ExtraBedTotal(); combined < MinBookingAmount {
			return &ValidationError{
				Field: "totalAmount",
				Message: fmt.Sprintf("total amount including extra beds must be at least %d, got %.0f",
					MinBookingAmount, combined),
			}
		}
	}
	return nil
}

// ValidateCheckout checks a checkout draft right before submission.
func (v *GuestValidator) ValidateCheckout(draft models.CheckoutDraft) error {
	if draft.CheckoutDate == "" {
		return &ValidationError{Field: "checkoutDate", Message: "checkout date is required"}
	}
	if err := v.validate.Var(draft.CheckoutDate, "staydate"); err != nil {
		return &ValidationError{Field: "checkoutDate", Message: "checkout date must be a valid dd-mm-yyyy date"}
	}
	if draft.FinalAmount < 0 {
		return &ValidationError{Field: "finalAmount", Message: "final amount cannot be negative"}
	}
	return nil
}
