package navigation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/viant/mcp-protocol/syncmap"
)

// Router keeps current location and notifies listeners on route change
type Router struct {
	mux       sync.RWMutex
	location  string
	loginPath string
	history   []string
	listeners *syncmap.Map[string, Listener]
	logger    *slog.Logger
}

// Location returns context location if present, otherwise router location
func (r *Router) Location(ctx context.Context) string {
	if location, ok := locationFrom(ctx); ok {
		return location
	}
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.location
}

// LoginPath returns login route
func (r *Router) LoginPath() string {
	return r.loginPath
}

// Push navigates to target, it returns false when target is the current location
func (r *Router) Push(ctx context.Context, target string) bool {
	r.mux.Lock()
	from := r.location
	if from == target {
		r.mux.Unlock()
		return false
	}
	r.location = target
	r.history = append(r.history, target)
	r.mux.Unlock()

	r.logger.Debug("route changed", "from", from, "to", target)
	for _, listener := range r.listeners.Values() {
		listener(ctx, from, target)
	}
	return true
}

// RedirectToLogin navigates to login route with returnPath as redirect target
func (r *Router) RedirectToLogin(ctx context.Context, returnPath string) error {
	r.Push(ctx, LoginURL(r.loginPath, returnPath))
	return nil
}

// OnChange registers listener, returned function unregisters it
func (r *Router) OnChange(listener Listener) func() {
	id := uuid.NewString()
	r.listeners.Put(id, listener)
	return func() {
		r.listeners.Delete(id)
	}
}

// History returns visited locations
func (r *Router) History() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return append([]string(nil), r.history...)
}

// NewRouter creates router
func NewRouter(options ...Option) *Router {
	ret := &Router{
		loginPath: DefaultLoginPath,
		listeners: syncmap.NewMap[string, Listener](),
		logger:    slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
