package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-frontdesk/models"
)

func TestGuestWorkbook(t *testing.T) {
	store := NewGuestStore()
	store.ReplaceAll([]models.Guest{
		{
			ID: 2, Name: "Ben Thomas", RoomNumber: "101",
			CheckInDate: "2025-08-29", Status: models.StatusCheckedIn,
			TotalAmount: 2600, PaidAmount: 2000,
			ExtraBeds: []models.ExtraBed{{Name: "Joe", Charge: 500}},
		},
		{ID: 1, Name: "Anna Varghese", Status: models.StatusCheckedOut},
	}, nil)
	svc := NewExportService(store)

	f, err := svc.GuestWorkbook("", "all")
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Guests", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Name", name)

	// projection order: newest id first
	first, err := f.GetCellValue("Guests", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ben Thomas", first)

	checkIn, err := f.GetCellValue("Guests", "G2")
	require.NoError(t, err)
	assert.Equal(t, "29-08-2025", checkIn)

	beds, err := f.GetCellValue("Guests", "N2")
	require.NoError(t, err)
	assert.Equal(t, "Joe (500)", beds)
}
