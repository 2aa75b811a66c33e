package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
	"parcel/internal/nav"
)

// SupportController drives the ticket list and creation screens.
type SupportController struct {
	support *api.SupportClient
	nav     *nav.Navigator
	strings *i18n.Registry
	logger  *zap.Logger

	Tickets []model.SupportTicket
	ErrText string
	Loading bool
}

// NewSupportController creates a SupportController.
func NewSupportController(support *api.SupportClient, n *nav.Navigator, reg *i18n.Registry, logger *zap.Logger) *SupportController {
	return &SupportController{support: support, nav: n, strings: reg, logger: logger}
}

// Load fetches the ticket list, optionally filtered by status.
func (c *SupportController) Load(ctx context.Context, status model.TicketStatus) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	tickets, err := c.support.ListTickets(ctx, status)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Tickets = tickets
	return nil
}

// Create opens a ticket and navigates to its thread.
func (c *SupportController) Create(ctx context.Context, subject, category, message, bookingID string) error {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(message) == "" {
		c.ErrText = c.strings.Current().UnexpectedError
		return ErrBlankField
	}

	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	ticket, err := c.support.CreateTicket(ctx, api.CreateTicketRequest{
		Subject:   strings.TrimSpace(subject),
		Category:  category,
		Message:   strings.TrimSpace(message),
		BookingID: bookingID,
	})
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.nav.Navigate(nav.SupportTicket{TicketID: ticket.ID})
	return nil
}

// Open opens one ticket's thread.
func (c *SupportController) Open(ticketID string) {
	c.nav.Navigate(nav.SupportTicket{TicketID: ticketID})
}

// TicketController drives one ticket's thread screen.
type TicketController struct {
	support *api.SupportClient
	strings *i18n.Registry
	logger  *zap.Logger

	TicketID string
	Ticket   model.SupportTicket
	ErrText  string
	Loading  bool
}

// NewTicketController creates a TicketController for one ticket.
func NewTicketController(support *api.SupportClient, reg *i18n.Registry, logger *zap.Logger, ticketID string) *TicketController {
	return &TicketController{support: support, strings: reg, logger: logger, TicketID: ticketID}
}

// Load fetches the ticket with its thread.
func (c *TicketController) Load(ctx context.Context) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	ticket, err := c.support.GetTicket(ctx, c.TicketID)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Ticket = ticket
	return nil
}

// Reply appends a message to the thread; the stored copy is appended
// locally after a successful POST.
func (c *TicketController) Reply(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrBlankMessage
	}

	c.ErrText = ""
	msg, err := c.support.Reply(ctx, c.TicketID, text)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Ticket.Messages = append(c.Ticket.Messages, msg)
	return nil
}

// Close closes the ticket and re-fetches it for the server-assigned
// status.
func (c *TicketController) Close(ctx context.Context) error {
	c.ErrText = ""
	if err := c.support.CloseTicket(ctx, c.TicketID); err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	return c.Load(ctx)
}
