package transport

import (
	"net/http"
	"time"
)

// DefaultTimeout is the upper bound of a single request
const DefaultTimeout = 60 * time.Second

// DefaultMaxBodySize limits response body read into envelope
const DefaultMaxBodySize int64 = 64 << 20

type Option func(h *HTTP)

// WithBaseURL sets base URL relative paths are resolved against
func WithBaseURL(baseURL string) Option {
	return func(h *HTTP) {
		h.baseURL = baseURL
	}
}

// WithTimeout sets request timeout, non-positive value disables it
func WithTimeout(timeout time.Duration) Option {
	return func(h *HTTP) {
		h.timeout = timeout
	}
}

// WithRoundTripper sets base round tripper
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(h *HTTP) {
		h.roundTripper = rt
	}
}

// WithMiddlewares appends round tripper middlewares
func WithMiddlewares(mws ...Middleware) Option {
	return func(h *HTTP) {
		h.middlewares = append(h.middlewares, mws...)
	}
}

// WithCookieJar sets cookie jar
func WithCookieJar(jar http.CookieJar) Option {
	return func(h *HTTP) {
		h.jar = jar
	}
}

// WithMaxBodySize sets response body limit
func WithMaxBodySize(size int64) Option {
	return func(h *HTTP) {
		h.maxBodySize = size
	}
}
