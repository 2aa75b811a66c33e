package screen

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/i18n"
	"parcel/internal/model"
	"parcel/internal/nav"
)

// HomeController drives the main screen: the destination search box with
// debounced autocomplete, and the entry points into the booking flow.
type HomeController struct {
	location *api.LocationClient
	nav      *nav.Navigator
	strings  *i18n.Registry
	logger   *zap.Logger
	debounce time.Duration

	mu          sync.Mutex
	timer       *time.Timer
	gen         uint64
	Suggestions []model.PlaceSuggestion
	ErrText     string
}

// NewHomeController creates a HomeController. debounce is the quiet
// period after the last keystroke before a request fires.
func NewHomeController(location *api.LocationClient, n *nav.Navigator, reg *i18n.Registry, logger *zap.Logger, debounce time.Duration) *HomeController {
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &HomeController{
		location: location,
		nav:      n,
		strings:  reg,
		logger:   logger,
		debounce: debounce,
	}
}

// QueryChanged handles one keystroke. Each call cancels the pending
// debounce timer and arms a new one; only after the quiet period does the
// autocomplete request fire. A generation counter tags each fired request
// so a slow response for an older query can never overwrite the
// suggestions of a newer one.
func (c *HomeController) QueryChanged(ctx context.Context, query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		c.gen++
		c.Suggestions = nil
		return
	}

	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.debounce, func() {
		c.fetchSuggestions(ctx, query, gen)
	})
}

func (c *HomeController) fetchSuggestions(ctx context.Context, query string, gen uint64) {
	suggestions, err := c.location.Autocomplete(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer keystroke superseded this request.
		return
	}
	if err != nil {
		c.ErrText = errorText(c.strings.Current(), err)
		return
	}
	c.ErrText = ""
	c.Suggestions = suggestions
}

// CurrentSuggestions returns a snapshot of the suggestion list.
func (c *HomeController) CurrentSuggestions() []model.PlaceSuggestion {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.PlaceSuggestion, len(c.Suggestions))
	copy(out, c.Suggestions)
	return out
}

// SelectSuggestion resolves a chosen suggestion to coordinates.
func (c *HomeController) SelectSuggestion(ctx context.Context, s model.PlaceSuggestion) (model.Place, error) {
	place, err := c.location.Geocode(ctx, s.Title)
	if err != nil {
		c.mu.Lock()
		c.ErrText = errorText(c.strings.Current(), err)
		c.mu.Unlock()
		return model.Place{}, err
	}
	return place, nil
}

// OpenOrders, OpenWallet, OpenProfile and OpenSupport are the bottom-bar
// transitions; each pushes forward so back returns to Home.
func (c *HomeController) OpenOrders()  { c.nav.Navigate(nav.Orders{}) }
func (c *HomeController) OpenWallet()  { c.nav.Navigate(nav.Wallet{}) }
func (c *HomeController) OpenProfile() { c.nav.Navigate(nav.Profile{}) }
func (c *HomeController) OpenSupport() { c.nav.Navigate(nav.Support{}) }
