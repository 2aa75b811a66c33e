package nav

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Options adjusts a forward navigation. PopUpTo removes back-stack
// entries up to the named route before pushing; Inclusive removes that
// route as well. These rules define what the back gesture does at every
// point in a flow, so each transition's options must be preserved.
type Options struct {
	PopUpTo   string
	Inclusive bool
}

// Navigator owns the back stack and notifies the shell when the visible
// route changes. Safe for concurrent use.
type Navigator struct {
	mu       sync.Mutex
	stack    *Stack
	logger   *zap.Logger
	onChange func(Route)
}

// NewNavigator creates a navigator rooted at the initial route.
func NewNavigator(initial Route, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{stack: NewStack(initial), logger: logger}
}

// OnChange registers the callback invoked after every visible-route
// change. One subscriber (the shell) is enough.
func (n *Navigator) OnChange(fn func(Route)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// Current returns the visible route.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Current()
}

// Navigate pushes a route, applying at most one Options value first.
func (n *Navigator) Navigate(r Route, opts ...Options) {
	n.mu.Lock()
	if len(opts) > 0 && opts[0].PopUpTo != "" {
		n.stack.PopUpTo(opts[0].PopUpTo, opts[0].Inclusive)
	}
	n.stack.Push(r)
	n.logger.Debug("navigate",
		zap.String("route", r.Encode()),
		zap.Int("depth", n.stack.Depth()))
	fn, cur := n.onChange, n.stack.Current()
	n.mu.Unlock()

	if fn != nil {
		fn(cur)
	}
}

// Back pops the visible route. Returns false on the root entry, meaning
// the shell should exit instead.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	if !n.stack.Pop() {
		n.mu.Unlock()
		return false
	}
	fn, cur := n.onChange, n.stack.Current()
	n.mu.Unlock()

	if fn != nil {
		fn(cur)
	}
	return true
}

// Reset clears the stack to a new root. Used by logout.
func (n *Navigator) Reset(root Route) {
	n.mu.Lock()
	n.stack.Reset(root)
	fn, cur := n.onChange, n.stack.Current()
	n.mu.Unlock()

	if fn != nil {
		fn(cur)
	}
}

// Contains reports whether the back stack holds a route with the name.
func (n *Navigator) Contains(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Contains(name)
}

// Depth returns the back-stack depth.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.Depth()
}

// InitialRoute picks the graph's start destination: Home when a plausibly
// valid session token exists, Splash otherwise. The token is opaque, but
// when it happens to be a JWT with an expiry in the past the session is
// treated as absent rather than bouncing through a failed request.
func InitialRoute(token string) Route {
	if token == "" {
		return Splash{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(timeNow()) {
			return Splash{}
		}
	}
	return Home{}
}
