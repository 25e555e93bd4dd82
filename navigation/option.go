package navigation

import "log/slog"

type Option func(r *Router)

// WithLoginPath sets login route
func WithLoginPath(path string) Option {
	return func(r *Router) {
		if path != "" {
			r.loginPath = path
		}
	}
}

// WithInitialLocation sets initial location
func WithInitialLocation(location string) Option {
	return func(r *Router) {
		r.location = location
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}
