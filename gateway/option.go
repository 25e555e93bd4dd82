package gateway

import (
	"log/slog"

	"github.com/viant/reqgate/auth"
	"github.com/viant/reqgate/registry"
	"github.com/viant/reqgate/transport"
)

type Option func(g *Gateway)

// WithRegistry sets cancellation registry
func WithRegistry(r *registry.Registry) Option {
	return func(g *Gateway) {
		g.registry = r
	}
}

// WithInterceptor sets auth interceptor
func WithInterceptor(interceptor *auth.Interceptor) Option {
	return func(g *Gateway) {
		g.interceptor = interceptor
	}
}

// WithTransport sets transport
func WithTransport(t transport.Transport) Option {
	return func(g *Gateway) {
		g.transport = t
	}
}

// WithKeyFunc sets request key formula
func WithKeyFunc(fn KeyFunc) Option {
	return func(g *Gateway) {
		g.keyFunc = fn
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}
