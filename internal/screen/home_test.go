package screen

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/nav"
)

// newHomeFixture wires a HomeController against a live test server whose
// autocomplete handler echoes the query back as the single suggestion.
func newHomeFixture(t *testing.T, debounce time.Duration, hits *atomic.Int64) (*HomeController, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/location/autocomplete" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		hits.Add(1)
		q := r.URL.Query().Get("q")
		fmt.Fprintf(w, `{"success":true,"data":[{"id":"p1","title":%q,"description":"test"}]}`, q)
	}))
	t.Cleanup(srv.Close)

	client := api.NewClient(api.Options{BaseURL: srv.URL})
	n := nav.NewNavigator(nav.Home{}, nil)
	c := NewHomeController(api.NewLocationClient(client), n, i18n.NewRegistry("en"), testLogger(), debounce)
	return c, srv
}

func TestHomeSearch_DebounceCollapsesKeystrokes(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	c, _ := newHomeFixture(t, 50*time.Millisecond, &hits)
	ctx := context.Background()

	// Three keystrokes inside one quiet period must produce at most one
	// request, for the final text.
	c.QueryChanged(ctx, "a")
	c.QueryChanged(ctx, "ab")
	c.QueryChanged(ctx, "abc")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(c.CurrentSuggestions()) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("expected exactly 1 request, got %d", got)
	}
	suggestions := c.CurrentSuggestions()
	if len(suggestions) != 1 || suggestions[0].Title != "abc" {
		t.Errorf("expected suggestions for \"abc\", got %+v", suggestions)
	}
}

func TestHomeSearch_BlankQueryClearsWithoutRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	c, _ := newHomeFixture(t, 20*time.Millisecond, &hits)
	ctx := context.Background()

	c.QueryChanged(ctx, "   ")
	time.Sleep(100 * time.Millisecond)

	if got := hits.Load(); got != 0 {
		t.Errorf("expected no request for a blank query, got %d", got)
	}
	if len(c.CurrentSuggestions()) != 0 {
		t.Errorf("expected no suggestions, got %+v", c.CurrentSuggestions())
	}
}

func TestHomeSearch_StaleResponseNeverOverwrites(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	c, _ := newHomeFixture(t, 10*time.Millisecond, &hits)
	ctx := context.Background()

	c.QueryChanged(ctx, "fresh")
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(c.CurrentSuggestions()) > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	// Simulate a slow in-flight response for an older keystroke arriving
	// after the newer one already populated the list.
	c.mu.Lock()
	stale := c.gen - 1
	c.mu.Unlock()
	c.fetchSuggestions(ctx, "stale", stale)

	suggestions := c.CurrentSuggestions()
	if len(suggestions) != 1 || suggestions[0].Title != "fresh" {
		t.Errorf("expected the newer query's suggestions to survive, got %+v", suggestions)
	}
}

func TestHomeSearch_NewKeystrokeCancelsPendingTimer(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	c, _ := newHomeFixture(t, 60*time.Millisecond, &hits)
	ctx := context.Background()

	c.QueryChanged(ctx, "abandoned")
	time.Sleep(20 * time.Millisecond)
	c.QueryChanged(ctx, "")
	time.Sleep(200 * time.Millisecond)

	if got := hits.Load(); got != 0 {
		t.Errorf("expected the cleared query to cancel the pending request, got %d requests", got)
	}
}
