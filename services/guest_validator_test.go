package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddRequest() AddGuestRequest {
	return AddGuestRequest{
		Name:          "Anna Varghese",
		Email:         "anna@example.com",
		Phone:         "9876543210",
		IDProofType:   "aadhar",
		IDProofNumber: "1234-5678-9012",
		RoomNumber:    "102",
		CheckInDate:   "10-06-2025",
		CheckOutDate:  "12-06-2025",
		TotalAmount:   2500,
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Field
}

func TestValidateAddPasses(t *testing.T) {
	v := NewGuestValidator()
	assert.NoError(t, v.ValidateAdd(validAddRequest(), nil))
}

func TestValidateAddRequiredFields(t *testing.T) {
	v := NewGuestValidator()

	tests := []struct {
		name      string
		mutate    func(*AddGuestRequest)
		wantField string
	}{
		{"missing name", func(r *AddGuestRequest) { r.Name = "" }, "name"},
		{"missing phone", func(r *AddGuestRequest) { r.Phone = "" }, "phone"},
		{"missing id number", func(r *AddGuestRequest) { r.IDProofNumber = "" }, "idProofNumber"},
		{"missing room", func(r *AddGuestRequest) { r.RoomNumber = "" }, "roomNumber"},
		{"bad email", func(r *AddGuestRequest) { r.Email = "not-an-email" }, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAddRequest()
			tt.mutate(&req)
			err := v.ValidateAdd(req, nil)
			assert.Equal(t, tt.wantField, fieldOf(t, err))
		})
	}
}

func TestValidateAddSecondaryGuestNeedsName(t *testing.T) {
	v := NewGuestValidator()
	req := validAddRequest()
	req.SecondaryGuest = &SecondaryGuestInput{Enabled: true}

	err := v.ValidateAdd(req, nil)
	assert.Equal(t, "secondaryGuest.name", fieldOf(t, err))

	// a collapsed section is ignored entirely
	req.SecondaryGuest.Enabled = false
	assert.NoError(t, v.ValidateAdd(req, nil))
}

func TestValidateAddExtraBeds(t *testing.T) {
	v := NewGuestValidator()

	req := validAddRequest()
	req.ExtraBeds = []ExtraBedInput{{Charge: 500}}
	assert.Equal(t, "extraBeds[0].name", fieldOf(t, v.ValidateAdd(req, nil)))

	req = validAddRequest()
	req.ExtraBeds = []ExtraBedInput{{Name: "Joe", Charge: 0}}
	assert.Equal(t, "extraBeds[0].charge", fieldOf(t, v.ValidateAdd(req, nil)))
}

func TestValidateAddDates(t *testing.T) {
	v := NewGuestValidator()

	req := validAddRequest()
	req.CheckInDate = "31-02-2024"
	assert.Equal(t, "checkInDate", fieldOf(t, v.ValidateAdd(req, nil)))

	req = validAddRequest()
	req.CheckInDate = "12-06-2025"
	req.CheckOutDate = "10-06-2025"
	assert.Equal(t, "checkOutDate", fieldOf(t, v.ValidateAdd(req, nil)))

	// same-day stays are fine
	req = validAddRequest()
	req.CheckOutDate = req.CheckInDate
	assert.NoError(t, v.ValidateAdd(req, nil))

	// absent dates are fine too
	req = validAddRequest()
	req.CheckInDate = ""
	req.CheckOutDate = ""
	assert.NoError(t, v.ValidateAdd(req, nil))
}

func TestValidateAddRoomAlreadyHeld(t *testing.T) {
	v := NewGuestValidator()
	req := validAddRequest()
	req.RoomNumber = "101"

	err := v.ValidateAdd(req, func(room string) bool { return room == "101" })
	assert.Equal(t, "roomNumber", fieldOf(t, err))
}

func TestValidateAddMinimumAmount(t *testing.T) {
	v := NewGuestValidator()

	// 1000 + 900 extra bed = 1900 >= 1800
	req := validAddRequest()
	req.TotalAmount = 1000
	req.ExtraBeds = []ExtraBedInput{{Name: "Joe", Charge: 900}}
	assert.NoError(t, v.ValidateAdd(req, nil))

	// 1000 + 700 = 1700 < 1800
	req.ExtraBeds = []ExtraBedInput{{Name: "Joe", Charge: 700}}
	assert.Equal(t, "totalAmount", fieldOf(t, v.ValidateAdd(req, nil)))

	// complimentary bookings are exempt
	req.Complimentary = true
	req.TotalAmount = 0
	assert.NoError(t, v.ValidateAdd(req, nil))
}
