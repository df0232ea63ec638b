package services

import "hotel-frontdesk/models"

// Built-in fallback dataset, shown when the backend cannot be reached on
// load so the desk still has something to work against. Mutations against
// these records will fail until a real load succeeds.

func sampleGuests() []models.Guest {
	return []models.Guest{
		{
			ID:          3,
			Name:        "Priya Sharma",
			Email:       "priya.sharma@example.com",
			Phone:       "9812345670",
			IDProof:     "aadhar-443322110987",
			RoomNumber:  "204",
			CheckInDate: "2025-08-28", CheckOutDate: "2025-08-31",
			Status:      models.StatusCheckedIn,
			Category:    models.CategoryFamily,
			TotalAmount: 7200, PaidAmount: 3000,
			ExtraBeds: []models.ExtraBed{
				{Name: "Aarav Sharma", Charge: 900},
			},
		},
		{
			ID:          2,
			Name:        "Daniel Kurian",
			Email:       "d.kurian@example.com",
			Phone:       "9900112233",
			IDProof:     "passport-M1234567",
			RoomNumber:  "101",
			CheckInDate: "2025-08-29", CheckOutDate: "2025-08-30",
			Status:      models.StatusCheckedIn,
			Category:    models.CategoryCorporate,
			TotalAmount: 2600, PaidAmount: 2600,
		},
		{
			ID:          1,
			Name:        "Meera and Rohit Nair",
			Email:       "meera.nair@example.com",
			Phone:       "9877001122",
			IDProof:     "license-KL0520210001",
			RoomNumber:  "305",
			CheckInDate: "2025-09-02", CheckOutDate: "2025-09-05",
			Status:      models.StatusReserved,
			Category:    models.CategoryCouple,
			TotalAmount: 5400, PaidAmount: 1000,
			SecondaryGuest: &models.SecondaryGuest{Name: "Rohit Nair"},
		},
	}
}

func sampleRooms() []models.Room {
	return []models.Room{
		{ID: 1, RoomNumber: "101", Type: "Standard", Floor: "1", Price: 2600, Status: models.RoomOccupied,
			CurrentGuest: "Daniel Kurian", CheckInDate: "2025-08-29", CheckOutDate: "2025-08-30"},
		{ID: 2, RoomNumber: "102", Type: "Standard", Floor: "1", Price: 2600, Status: models.RoomAvailable},
		{ID: 3, RoomNumber: "204", Type: "Deluxe", Floor: "2", Price: 3400, Status: models.RoomOccupied,
			CurrentGuest: "Priya Sharma", CheckInDate: "2025-08-28", CheckOutDate: "2025-08-31"},
		{ID: 4, RoomNumber: "205", Type: "Deluxe", Floor: "2", Price: 3400, Status: models.RoomAvailable},
		{ID: 5, RoomNumber: "305", Type: "Suite", Floor: "3", Price: 5400, Status: models.RoomAvailable},
		{ID: 6, RoomNumber: "306", Type: "Suite", Floor: "3", Price: 5400, Status: models.RoomMaintenance},
	}
}
