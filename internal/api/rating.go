package api

import (
	"context"

	"parcel/internal/model"
)

// RatingClient wraps the rating endpoints.
type RatingClient struct {
	c *Client
}

// NewRatingClient creates a RatingClient.
func NewRatingClient(c *Client) *RatingClient {
	return &RatingClient{c: c}
}

// Submit rates a completed booking.
func (r *RatingClient) Submit(ctx context.Context, bookingID string, stars int, comment string) (model.Rating, error) {
	raw, err := r.c.post(ctx, "/ratings/"+bookingID, map[string]any{
		"stars":   stars,
		"comment": comment,
	})
	if err != nil {
		return model.Rating{}, err
	}
	return unwrap[model.Rating](raw, ErrorOnNull, "Failed to submit rating")
}

// Get fetches the rating the user gave a booking, if any. A missing
// rating is not an error; the zero value is returned.
func (r *RatingClient) Get(ctx context.Context, bookingID string) (model.Rating, error) {
	raw, err := r.c.get(ctx, "/ratings/"+bookingID, nil)
	if err != nil {
		return model.Rating{}, err
	}
	return unwrap[model.Rating](raw, EmptyOnNull, "Failed to load rating")
}
