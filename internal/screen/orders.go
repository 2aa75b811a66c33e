package screen

import (
	"context"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
	"parcel/internal/nav"
)

// OrdersController drives the order history screen.
type OrdersController struct {
	bookings *api.BookingClient
	nav      *nav.Navigator
	strings  *i18n.Registry
	logger   *zap.Logger

	Bookings []model.Booking
	ErrText  string
	Loading  bool
}

// NewOrdersController creates an OrdersController.
func NewOrdersController(bookings *api.BookingClient, n *nav.Navigator, reg *i18n.Registry, logger *zap.Logger) *OrdersController {
	return &OrdersController{bookings: bookings, nav: n, strings: reg, logger: logger}
}

// Load fetches the order list, optionally filtered by status ("" for all).
func (c *OrdersController) Load(ctx context.Context, status model.BookingStatus) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	bookings, err := c.bookings.List(ctx, status)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Bookings = bookings
	return nil
}

// Open opens a booking's detail screen.
func (c *OrdersController) Open(bookingID string) {
	c.nav.Navigate(nav.BookingDetail{BookingID: bookingID})
}
