package screen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"parcel/internal/api"
)

func newTrackingFixture(t *testing.T, handler http.HandlerFunc, interval, maxBackoff time.Duration) *TrackingController {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.NewClient(api.Options{BaseURL: srv.URL})
	return NewTrackingController(
		api.NewBookingClient(client), api.NewLocationClient(client),
		testLogger(), interval, maxBackoff)
}

func TestTracking_StopsOnTerminalStatus(t *testing.T) {
	t.Parallel()

	c := newTrackingFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"bk-1","status":"DELIVERED"}}`))
	}, 10*time.Millisecond, 40*time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background(), "bk-1") }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil on terminal status, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected the loop to exit on a delivered booking")
	}

	if c.State().Booking.Status != "DELIVERED" {
		t.Errorf("expected the terminal snapshot kept, got %q", c.State().Booking.Status)
	}
}

func TestTracking_CancelStopsTheLoop(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	c := newTrackingFixture(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		// An active booking with no driver yet keeps the loop polling.
		w.Write([]byte(`{"success":true,"data":{"id":"bk-1","status":"SEARCHING_DRIVER"}}`))
	}, 10*time.Millisecond, 40*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, "bk-1") }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && hits.Load() < 2 {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected the loop to exit after cancellation")
	}
}

func TestTracking_FailedIterationKeepsLastSnapshot(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	c := newTrackingFixture(t, func(w http.ResponseWriter, r *http.Request) {
		n := hits.Add(1)
		if n > 1 {
			// Every iteration after the first fails; the loop must keep
			// retrying with the last good snapshot intact.
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"success":true,"data":{"id":"bk-1","status":"SEARCHING_DRIVER"}}`))
	}, 5*time.Millisecond, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, "bk-1") }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && hits.Load() < 4 {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if hits.Load() < 4 {
		t.Fatalf("expected the loop to keep retrying after failures, got %d requests", hits.Load())
	}
	if c.State().Booking.Status != "SEARCHING_DRIVER" {
		t.Errorf("expected the last good snapshot kept, got %q", c.State().Booking.Status)
	}
}

func TestTracking_FullIterationBuildsSnapshot(t *testing.T) {
	t.Parallel()

	handler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/bookings/bk-1":
			w.Write([]byte(`{"success":true,"data":{"id":"bk-1","status":"IN_TRANSIT","delivery":{"lat":12.98,"lng":77.60},"driver":{"id":"d1","deviceId":"dev-1"}}}`))
		case r.URL.Path == "/bookings/bk-1/eta":
			w.Write([]byte(`{"success":true,"data":{"etaMinutes":12,"distanceKm":4.2}}`))
		case strings.HasPrefix(r.URL.Path, "/location/get-position/"):
			w.Write([]byte(`{"success":true,"data":{"deviceId":"dev-1","lat":12.97,"lng":77.59}}`))
		case r.URL.Path == "/location/snap-to-roads":
			w.Write([]byte(`{"success":true,"data":{"points":[{"lat":12.97,"lng":77.59},{"lat":12.975,"lng":77.595}]}}`))
		case r.URL.Path == "/location/calculate-route":
			w.Write([]byte(`{"success":true,"data":{"polyline":"abc","distanceKm":4.2,"durationMin":12}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"success":false,"message":"no handler for %s"}`, r.URL.Path)
		}
	}
	c := newTrackingFixture(t, handler, 10*time.Millisecond, 40*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, "bk-1") }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.State().EtaMinutes > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	state := c.State()
	if state.Booking.Status != "IN_TRANSIT" {
		t.Errorf("expected booking refreshed, got status %q", state.Booking.Status)
	}
	if state.Position.Lat == 0 || state.Position.Lng == 0 {
		t.Errorf("expected a driver position, got %+v", state.Position)
	}
	if state.EtaMinutes != 12 {
		t.Errorf("expected eta 12, got %d", state.EtaMinutes)
	}
	if len(state.Trail) == 0 {
		t.Error("expected the trail to accumulate")
	}
	if state.Route.Polyline == "" {
		t.Error("expected a computed route")
	}
}
