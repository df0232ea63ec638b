package services

import (
	"sort"
	"strings"
	"sync"

	"hotel-frontdesk/models"
)

// GuestStore is the station's in-memory cache of the backend's guest and
// room lists. The guest slice preserves the server's delivery order (new
// records from push events are prepended); display ordering is applied
// only in Projection and never touches the cache.
type GuestStore struct {
	mu     sync.RWMutex
	guests []models.Guest
	rooms  []models.Room
}

func NewGuestStore() *GuestStore {
	return &GuestStore{}
}

// ReplaceAll swaps in freshly fetched lists wholesale.
func (s *GuestStore) ReplaceAll(guests []models.Guest, rooms []models.Room) {
	s.mu.Lock()
	s.guests = guests
	s.rooms = rooms
	s.mu.Unlock()
}

// ReplaceGuests swaps in a freshly fetched guest list, leaving rooms as-is.
func (s *GuestStore) ReplaceGuests(guests []models.Guest) {
	s.mu.Lock()
	s.guests = guests
	s.mu.Unlock()
}

// Guests returns a copy of the cached guest list in cache order.
func (s *GuestStore) Guests() []models.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Guest, len(s.guests))
	copy(out, s.guests)
	return out
}

// Rooms returns a copy of the cached room list.
func (s *GuestStore) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Guest looks a guest up by id.
func (s *GuestStore) Guest(id int) (models.Guest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.guests {
		if g.ID == id {
			return g, true
		}
	}
	return models.Guest{}, false
}

// ApplyGuestUpdated replaces a cached guest in place. Events for ids not
// in the cache are dropped; the list never grows from an update.
func (s *GuestStore) ApplyGuestUpdated(g models.Guest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guests {
		if s.guests[i].ID == g.ID {
			s.guests[i] = g
			return true
		}
	}
	return false
}

// PrependGuest puts a newly created guest at the head of the cache.
func (s *GuestStore) PrependGuest(g models.Guest) {
	s.mu.Lock()
	s.guests = append([]models.Guest{g}, s.guests...)
	s.mu.Unlock()
}

// RoomByNumber finds a cached room by its number.
func (s *GuestStore) RoomByNumber(number string) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.RoomNumber == number {
			return r, true
		}
	}
	return models.Room{}, false
}

// RoomHeldByCheckedIn reports whether any checked-in guest currently holds
// the room.
func (s *GuestStore) RoomHeldByCheckedIn(roomNumber string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.guests {
		if g.Status == models.StatusCheckedIn && g.RoomNumber == roomNumber {
			return true
		}
	}
	return false
}

// Projection returns the guests matching the free-text query and status
// filter, ordered newest first (descending id, ties broken by descending
// check-in date). A display-only view; the cache order is untouched.
func (s *GuestStore) Projection(query, status string) []models.Guest {
	s.mu.RLock()
	matched := make([]models.Guest, 0, len(s.guests))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, g := range s.guests {
		if status != "" && status != "all" && g.Status != status {
			continue
		}
		if q != "" && !guestMatches(g, q) {
			continue
		}
		matched = append(matched, g)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].ID != matched[j].ID {
			return matched[i].ID > matched[j].ID
		}
		// Backend dates are yyyy-mm-dd, so string order is date order.
		return matched[i].CheckInDate > matched[j].CheckInDate
	})
	return matched
}

func guestMatches(g models.Guest, q string) bool {
	if strings.Contains(strings.ToLower(g.Name), q) ||
		strings.Contains(strings.ToLower(g.Email), q) ||
		strings.Contains(strings.ToLower(g.RoomNumber), q) {
		return true
	}
	if g.SecondaryGuest != nil && strings.Contains(strings.ToLower(g.SecondaryGuest.Name), q) {
		return true
	}
	for _, b := range g.ExtraBeds {
		if strings.Contains(strings.ToLower(b.Name), q) {
			return true
		}
	}
	return false
}
