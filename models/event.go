package models

import (
	"encoding/json"
	"time"
)

// EventType enumerates the push-channel notifications the station reacts to.
type EventType string

const (
	EventGuestUpdated    EventType = "guest_updated"
	EventGuestCreated    EventType = "guest_created"
	EventRoomUpdated     EventType = "room_updated"
	EventRoomShifted     EventType = "room_shifted"
	EventActivityUpdated EventType = "activity_updated"
)

// Event is the push-channel envelope. Payload shapes mirror the
// corresponding REST resources.
type Event struct {
	Type      EventType       `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Activity is a backend activity-feed entry shown on the dashboard.
type Activity struct {
	ID        int    `json:"id"`
	Action    string `json:"action"`
	GuestName string `json:"guestName,omitempty"`
	Room      string `json:"room,omitempty"`
	Timestamp string `json:"timestamp"`
}
