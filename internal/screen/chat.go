package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
)

// ChatController drives the driver chat screen for one booking. The
// thread is server-ordered; the only local mutation is appending the
// just-sent message after a successful POST.
type ChatController struct {
	chat    *api.ChatClient
	strings *i18n.Registry
	logger  *zap.Logger

	BookingID    string
	Messages     []model.ChatMessage
	QuickReplies []string
	ErrText      string
	Loading      bool
}

// NewChatController creates a ChatController for one booking.
func NewChatController(chat *api.ChatClient, reg *i18n.Registry, logger *zap.Logger, bookingID string) *ChatController {
	return &ChatController{chat: chat, strings: reg, logger: logger, BookingID: bookingID}
}

// Load fetches the thread and the quick-reply chips.
func (c *ChatController) Load(ctx context.Context) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	messages, err := c.chat.Messages(ctx, c.BookingID)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Messages = messages

	// Quick replies are decorative; a failure here does not block the
	// thread.
	if replies, err := c.chat.QuickReplies(ctx); err == nil {
		c.QuickReplies = replies
	}
	return nil
}

// Send posts a message and appends the stored copy locally, avoiding a
// full thread re-fetch.
func (c *ChatController) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrBlankMessage
	}

	c.ErrText = ""
	msg, err := c.chat.Send(ctx, c.BookingID, text)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Messages = append(c.Messages, msg)
	return nil
}

// Unread fetches the unread badge count.
func (c *ChatController) Unread(ctx context.Context) (int, error) {
	res, err := c.chat.Unread(ctx, c.BookingID)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}
