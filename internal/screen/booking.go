package screen

import (
	"context"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
	"parcel/internal/nav"
)

// BookingController drives the booking confirmation and detail screens.
type BookingController struct {
	bookings *api.BookingClient
	promos   *api.PromoClient
	nav      *nav.Navigator
	strings  *i18n.Registry
	logger   *zap.Logger

	Booking model.Booking
	ErrText string
	Loading bool
}

// NewBookingController creates a BookingController.
func NewBookingController(bookings *api.BookingClient, promos *api.PromoClient, n *nav.Navigator, reg *i18n.Registry, logger *zap.Logger) *BookingController {
	return &BookingController{bookings: bookings, promos: promos, nav: n, strings: reg, logger: logger}
}

// Confirm places the booking and opens its detail screen.
func (c *BookingController) Confirm(ctx context.Context, req api.CreateBookingRequest) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	booking, err := c.bookings.Create(ctx, req)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Booking = booking
	c.nav.Navigate(nav.BookingDetail{BookingID: booking.ID})
	return nil
}

// Load re-fetches the booking; the screen always renders the server's
// copy of the status.
func (c *BookingController) Load(ctx context.Context, bookingID string) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	booking, err := c.bookings.Get(ctx, bookingID)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Booking = booking
	return nil
}

// Timeline returns the display step index and progress fraction for the
// loaded booking.
func (c *BookingController) Timeline() (step int, progress float64) {
	return c.Booking.Status.TimelineStep(), c.Booking.Status.ProgressFraction()
}

// StatusLabel returns the localized label for the loaded booking's status.
func (c *BookingController) StatusLabel() string {
	s := c.strings.Current()
	switch c.Booking.Status {
	case model.BookingStatusPending, model.BookingStatusSearchingDriver:
		return s.SearchingDriver
	case model.BookingStatusDriverAssigned:
		return s.DriverAssigned
	case model.BookingStatusDriverArrived:
		return s.DriverArrived
	case model.BookingStatusPickupDone:
		return s.PickedUp
	case model.BookingStatusInTransit:
		return s.InTransit
	case model.BookingStatusDelivered:
		return s.Delivered
	default:
		return s.Cancelled
	}
}

// Cancel cancels the booking and re-fetches it so the screen shows the
// server-assigned terminal state.
func (c *BookingController) Cancel(ctx context.Context, reason string) error {
	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	if err := c.bookings.Cancel(ctx, c.Booking.ID, reason); err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	return c.Load(ctx, c.Booking.ID)
}

// VerifyDelivery confirms delivery with the recipient's code.
func (c *BookingController) VerifyDelivery(ctx context.Context, code string) error {
	if code == "" {
		c.ErrText = c.strings.Current().InvalidOTP
		return ErrBlankField
	}

	c.ErrText = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	booking, err := c.bookings.VerifyDelivery(ctx, c.Booking.ID, code)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return err
	}
	c.Booking = booking
	return nil
}

// ApplyPromo applies a promo code to the loaded booking.
func (c *BookingController) ApplyPromo(ctx context.Context, code string) (model.PromoResult, error) {
	res, err := c.promos.Apply(ctx, code, c.Booking.ID)
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return model.PromoResult{}, err
	}
	c.ErrText = ""
	return res, nil
}

// Track opens live tracking for the loaded booking.
func (c *BookingController) Track() {
	c.nav.Navigate(nav.TrackingLive{BookingID: c.Booking.ID})
}

// OpenChat opens the driver chat for the loaded booking.
func (c *BookingController) OpenChat() {
	c.nav.Navigate(nav.Chat{BookingID: c.Booking.ID})
}
