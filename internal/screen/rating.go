package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
)

// RatingController drives the post-delivery rating screen.
type RatingController struct {
	ratings *api.RatingClient
	strings *i18n.Registry
	logger  *zap.Logger

	BookingID string
	Rating    model.Rating
	ErrText   string
	Loading   bool
}

// NewRatingController creates a RatingController for one booking.
func NewRatingController(ratings *api.RatingClient, reg *i18n.Registry, logger *zap.Logger, bookingID string) *RatingController {
	return &RatingController{ratings: ratings, strings: reg, logger: logger, BookingID: bookingID}
}

// Load fetches any existing rating; none is not an error.
func (c *RatingController) Load(ctx context.Context) error {
	c.ErrText = ""
	rating, err := c.ratings.Get(ctx, c.BookingID)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Rating = rating
	return nil
}

// Submit sends the rating. Stars must be 1-5.
func (c *RatingController) Submit(ctx context.Context, stars int, comment string) error {
	if stars < 1 || stars > 5 {
		return ErrBlankField
	}

	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	rating, err := c.ratings.Submit(ctx, c.BookingID, stars, strings.TrimSpace(comment))
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Rating = rating
	return nil
}
