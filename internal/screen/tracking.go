package screen

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/model"
)

// TrackingController drives the live tracking screen: a cooperative poll
// loop that follows the driver for the lifetime of the screen. Cancelling
// the context passed to Run stops the loop; each iteration is
// self-contained so no cleanup is needed.
type TrackingController struct {
	bookings *api.BookingClient
	location *api.LocationClient
	logger   *zap.Logger

	interval   time.Duration
	maxBackoff time.Duration

	mu      sync.Mutex
	state   TrackingState
	history []model.LatLng
}

// TrackingState is the snapshot the tracking screen renders.
type TrackingState struct {
	Booking    model.Booking
	Position   model.DevicePosition
	Trail      []model.LatLng
	Route      model.RouteResult
	EtaMinutes int
	Updated    time.Time
}

// NewTrackingController creates a TrackingController polling at interval,
// backing off up to maxBackoff after consecutive failed iterations.
func NewTrackingController(bookings *api.BookingClient, location *api.LocationClient, logger *zap.Logger, interval, maxBackoff time.Duration) *TrackingController {
	if interval <= 0 {
		interval = 8 * time.Second
	}
	if maxBackoff < interval {
		maxBackoff = 4 * interval
	}
	return &TrackingController{
		bookings:   bookings,
		location:   location,
		logger:     logger,
		interval:   interval,
		maxBackoff: maxBackoff,
	}
}

// Run polls until ctx is cancelled or the booking reaches a terminal
// status. A failed iteration is skipped — the screen keeps showing the
// last good snapshot — but consecutive failures double the wait up to the
// backoff cap; one success resets it.
func (c *TrackingController) Run(ctx context.Context, bookingID string) error {
	wait := c.interval

	// First iteration runs immediately so the screen is not blank for a
	// full poll interval.
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		terminal, err := c.tick(ctx, bookingID)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("tracking tick failed",
				zap.String("booking", bookingID),
				zap.Error(err))
			wait *= 2
			if wait > c.maxBackoff {
				wait = c.maxBackoff
			}
		} else {
			wait = c.interval
			if terminal {
				return nil
			}
		}
		timer.Reset(wait)
	}
}

// tick is one self-contained iteration: refresh the booking, read the
// driver position, extend the trail, snap it to roads once there are at
// least two points, and recompute route and ETA.
func (c *TrackingController) tick(ctx context.Context, bookingID string) (terminal bool, err error) {
	booking, err := c.bookings.Get(ctx, bookingID)
	if err != nil {
		return false, err
	}
	if booking.Status.Terminal() {
		c.mu.Lock()
		c.state.Booking = booking
		c.mu.Unlock()
		return true, nil
	}
	if booking.Driver == nil || booking.Driver.DeviceID == "" {
		// No driver yet; keep polling the booking only.
		c.mu.Lock()
		c.state.Booking = booking
		c.state.Updated = time.Now()
		c.mu.Unlock()
		return false, nil
	}

	pos, err := c.location.GetPosition(ctx, booking.Driver.DeviceID)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.history = append(c.history, model.LatLng{Lat: pos.Lat, Lng: pos.Lng})
	trail := make([]model.LatLng, len(c.history))
	copy(trail, c.history)
	c.mu.Unlock()

	if len(trail) >= 2 {
		snapped, err := c.location.SnapToRoads(ctx, trail)
		if err == nil && len(snapped.Points) > 0 {
			trail = snapped.Points
		}
	}

	route, err := c.location.CalculateRoute(ctx,
		model.LatLng{Lat: pos.Lat, Lng: pos.Lng},
		model.LatLng{Lat: booking.Delivery.Lat, Lng: booking.Delivery.Lng})
	if err != nil {
		return false, err
	}

	eta, err := c.bookings.ETA(ctx, bookingID)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.state = TrackingState{
		Booking:    booking,
		Position:   pos,
		Trail:      trail,
		Route:      route,
		EtaMinutes: eta.EtaMinutes,
		Updated:    time.Now(),
	}
	c.mu.Unlock()
	return false, nil
}

// State returns the latest snapshot.
func (c *TrackingController) State() TrackingState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
