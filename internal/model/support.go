package model

import "time"

// TicketStatus is the server-driven lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// TicketMessage is one entry in a support ticket's thread.
type TicketMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"` // "customer" or "agent"
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// SupportTicket is a customer support ticket with its embedded message
// thread.
type SupportTicket struct {
	ID        string          `json:"id"`
	Subject   string          `json:"subject"`
	Category  string          `json:"category"`
	Status    TicketStatus    `json:"status"`
	BookingID string          `json:"bookingId,omitempty"`
	Messages  []TicketMessage `json:"messages"`
	CreatedAt time.Time       `json:"createdAt"`
}
