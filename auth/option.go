package auth

import (
	"log/slog"

	"github.com/viant/reqgate/navigation"
)

type Option func(i *Interceptor)

// WithNavigator sets login navigator, a navigator implementing navigation.Locator also supplies location
func WithNavigator(navigator navigation.Navigator) Option {
	return func(i *Interceptor) {
		i.navigator = navigator
		if locator, ok := navigator.(navigation.Locator); ok && i.locator == nil {
			i.locator = locator
		}
	}
}

// WithLocator sets current location source
func WithLocator(locator navigation.Locator) Option {
	return func(i *Interceptor) {
		i.locator = locator
	}
}

// WithTokenHeader sets token header name
func WithTokenHeader(name string) Option {
	return func(i *Interceptor) {
		if name != "" {
			i.tokenHeader = name
		}
	}
}

// WithMarker sets header identifying the client
func WithMarker(name, value string) Option {
	return func(i *Interceptor) {
		i.markerHeader = name
		i.markerValue = value
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interceptor) {
		if logger != nil {
			i.logger = logger
		}
	}
}
