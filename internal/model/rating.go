package model

import "time"

// Rating is the customer's rating of a completed booking.
type Rating struct {
	BookingID string    `json:"bookingId"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
