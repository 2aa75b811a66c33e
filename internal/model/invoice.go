package model

import "time"

// InvoiceLine is one row of an invoice's price breakdown.
type InvoiceLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Invoice is a read-only projection of a completed booking. It is
// generated on demand and immutable once created.
type Invoice struct {
	ID        string        `json:"id"`
	BookingID string        `json:"bookingId"`
	Number    string        `json:"number"`
	Lines     []InvoiceLine `json:"lines"`
	Subtotal  float64       `json:"subtotal"`
	Tax       float64       `json:"tax"`
	Discount  float64       `json:"discount"`
	Total     float64       `json:"total"`
	CreatedAt time.Time     `json:"createdAt"`
}
