package api

import (
	"context"

	"parcel/internal/model"
)

// ChatClient wraps the booking chat endpoints.
type ChatClient struct {
	c *Client
}

// NewChatClient creates a ChatClient.
func NewChatClient(c *Client) *ChatClient {
	return &ChatClient{c: c}
}

// Messages fetches the chat thread for a booking, oldest first.
func (ch *ChatClient) Messages(ctx context.Context, bookingID string) ([]model.ChatMessage, error) {
	raw, err := ch.c.get(ctx, "/chat/"+bookingID, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]model.ChatMessage](raw, EmptyOnNull, "Failed to load messages")
}

// Send posts a message to the booking's chat thread and returns the
// stored message.
func (ch *ChatClient) Send(ctx context.Context, bookingID, text string) (model.ChatMessage, error) {
	raw, err := ch.c.post(ctx, "/chat/"+bookingID, map[string]string{"text": text})
	if err != nil {
		return model.ChatMessage{}, err
	}
	return unwrap[model.ChatMessage](raw, ErrorOnNull, "Failed to send message")
}

// Unread fetches the count of unread driver messages for a booking.
func (ch *ChatClient) Unread(ctx context.Context, bookingID string) (model.UnreadCount, error) {
	raw, err := ch.c.get(ctx, "/chat/"+bookingID+"/unread", nil)
	if err != nil {
		return model.UnreadCount{}, err
	}
	return unwrap[model.UnreadCount](raw, EmptyOnNull, "Failed to load unread count")
}

// QuickReplies fetches the canned one-tap messages.
func (ch *ChatClient) QuickReplies(ctx context.Context) ([]string, error) {
	raw, err := ch.c.get(ctx, "/chat/quick-messages", nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]string](raw, EmptyOnNull, "Failed to load quick replies")
}
