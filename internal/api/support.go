package api

import (
	"context"
	"net/url"

	"parcel/internal/model"
)

// SupportClient wraps the support ticket endpoints.
type SupportClient struct {
	c *Client
}

// NewSupportClient creates a SupportClient.
func NewSupportClient(c *Client) *SupportClient {
	return &SupportClient{c: c}
}

// CreateTicketRequest contains the parameters for opening a ticket.
type CreateTicketRequest struct {
	Subject   string `json:"subject"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId,omitempty"`
}

// CreateTicket opens a support ticket with an initial message.
func (s *SupportClient) CreateTicket(ctx context.Context, req CreateTicketRequest) (model.SupportTicket, error) {
	raw, err := s.c.post(ctx, "/support/tickets", req)
	if err != nil {
		return model.SupportTicket{}, err
	}
	return unwrap[model.SupportTicket](raw, ErrorOnNull, "Failed to create ticket")
}

// ListTickets fetches the user's tickets, optionally filtered by status.
func (s *SupportClient) ListTickets(ctx context.Context, status model.TicketStatus) ([]model.SupportTicket, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {string(status)}}
	}
	raw, err := s.c.get(ctx, "/support/tickets", query)
	if err != nil {
		return nil, err
	}
	return unwrap[[]model.SupportTicket](raw, EmptyOnNull, "Failed to load tickets")
}

// GetTicket fetches one ticket with its message thread.
func (s *SupportClient) GetTicket(ctx context.Context, id string) (model.SupportTicket, error) {
	raw, err := s.c.get(ctx, "/support/tickets/"+id, nil)
	if err != nil {
		return model.SupportTicket{}, err
	}
	return unwrap[model.SupportTicket](raw, ErrorOnNull, "Ticket not found")
}

// Reply appends a message to a ticket's thread and returns the stored
// message.
func (s *SupportClient) Reply(ctx context.Context, id, text string) (model.TicketMessage, error) {
	raw, err := s.c.post(ctx, "/support/tickets/"+id+"/reply", map[string]string{"text": text})
	if err != nil {
		return model.TicketMessage{}, err
	}
	return unwrap[model.TicketMessage](raw, ErrorOnNull, "Failed to send reply")
}

// CloseTicket closes a ticket.
func (s *SupportClient) CloseTicket(ctx context.Context, id string) error {
	raw, err := s.c.post(ctx, "/support/tickets/"+id+"/close", nil)
	if err != nil {
		return err
	}
	return unwrapNone(raw, "Failed to close ticket")
}
