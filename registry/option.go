package registry

import "log/slog"

// Option represents registry option
type Option func(r *Registry)

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}
