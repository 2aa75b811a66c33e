package api

import (
	"context"
	"net/url"

	"parcel/internal/model"
)

// BookingClient wraps the booking endpoints.
type BookingClient struct {
	c *Client
}

// NewBookingClient creates a BookingClient.
func NewBookingClient(c *Client) *BookingClient {
	return &BookingClient{c: c}
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	Pickup          model.Address       `json:"pickup"`
	Delivery        model.Address       `json:"delivery"`
	VehicleType     string              `json:"vehicleType"`
	PaymentMethod   model.PaymentMethod `json:"paymentMethod"`
	PromoCode       string              `json:"promoCode,omitempty"`
	PackageImageURL string              `json:"packageImageUrl,omitempty"`
}

// Create places a new booking.
func (b *BookingClient) Create(ctx context.Context, req CreateBookingRequest) (model.Booking, error) {
	raw, err := b.c.post(ctx, "/bookings", req)
	if err != nil {
		return model.Booking{}, err
	}
	return unwrap[model.Booking](raw, ErrorOnNull, "Failed to create booking")
}

// List fetches the user's bookings, optionally filtered by status.
func (b *BookingClient) List(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {string(status)}}
	}
	raw, err := b.c.get(ctx, "/bookings", query)
	if err != nil {
		return nil, err
	}
	return unwrap[[]model.Booking](raw, EmptyOnNull, "Failed to load bookings")
}

// Get fetches one booking.
func (b *BookingClient) Get(ctx context.Context, id string) (model.Booking, error) {
	raw, err := b.c.get(ctx, "/bookings/"+id, nil)
	if err != nil {
		return model.Booking{}, err
	}
	return unwrap[model.Booking](raw, ErrorOnNull, "Booking not found")
}

// VerifyDelivery confirms delivery with the code handed to the recipient.
func (b *BookingClient) VerifyDelivery(ctx context.Context, id, code string) (model.Booking, error) {
	raw, err := b.c.post(ctx, "/bookings/"+id+"/verify-delivery", map[string]string{"code": code})
	if err != nil {
		return model.Booking{}, err
	}
	return unwrap[model.Booking](raw, ErrorOnNull, "Verification failed")
}

// Cancel cancels a booking. The server decides whether the current status
// still allows it.
func (b *BookingClient) Cancel(ctx context.Context, id, reason string) error {
	raw, err := b.c.post(ctx, "/bookings/"+id+"/cancel", map[string]string{"reason": reason})
	if err != nil {
		return err
	}
	return unwrapNone(raw, "Failed to cancel booking")
}

// ETA fetches the current delivery estimate for a booking.
func (b *BookingClient) ETA(ctx context.Context, id string) (model.ETAResult, error) {
	raw, err := b.c.get(ctx, "/bookings/"+id+"/eta", nil)
	if err != nil {
		return model.ETAResult{}, err
	}
	return unwrap[model.ETAResult](raw, EmptyOnNull, "Failed to load ETA")
}
