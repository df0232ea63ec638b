package services

import "hotel-frontdesk/models"

// RoomService is the read side of the cached room inventory.
type RoomService struct {
	store *GuestStore
}

func NewRoomService(store *GuestStore) RoomService {
	return RoomService{store: store}
}

func (s RoomService) List() []models.Room {
	return s.store.Rooms()
}

// Available returns the rooms a new guest can be assigned to.
func (s RoomService) Available() []models.Room {
	var out []models.Room
	for _, r := range s.store.Rooms() {
		if r.Status == models.RoomAvailable {
			out = append(out, r)
		}
	}
	return out
}
