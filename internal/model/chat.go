package model

import "time"

// ChatMessage is one entry in a booking's chat thread. Ordering is
// server-assigned; the client never reorders.
type ChatMessage struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	Sender    string    `json:"sender"` // "customer" or "driver"
	Text      string    `json:"text"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnreadCount is the payload of a chat unread-count call.
type UnreadCount struct {
	Count int `json:"count"`
}
