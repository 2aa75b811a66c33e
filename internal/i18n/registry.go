package i18n

import "sync"

// Registry holds the process-wide active string catalog. The active value
// is swapped whole when the user changes language; subscribers are
// notified so mounted screens can re-render their text.
type Registry struct {
	mu      sync.RWMutex
	current *Strings
	subs    []func(*Strings)
}

// NewRegistry creates a registry with the catalog for the given language
// code active (falling back to English for unrecognized codes).
func NewRegistry(code string) *Registry {
	return &Registry{current: ForLanguage(code)}
}

// Current returns the active catalog.
func (r *Registry) Current() *Strings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// SetLanguage swaps the active catalog and notifies subscribers. Swapping
// to the already-active language is a no-op.
func (r *Registry) SetLanguage(code string) {
	next := ForLanguage(code)

	r.mu.Lock()
	if next == r.current {
		r.mu.Unlock()
		return
	}
	r.current = next
	subs := make([]func(*Strings), len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers a callback invoked on every language swap. The
// callback runs on the swapping goroutine.
func (r *Registry) Subscribe(fn func(*Strings)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
}
