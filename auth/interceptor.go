package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/viant/reqgate/credential"
	"github.com/viant/reqgate/navigation"
	"github.com/viant/reqgate/transport"
)

const (
	// DefaultTokenHeader carries the token
	DefaultTokenHeader = "token"
	// DefaultMarkerHeader identifies requests sent by the gateway
	DefaultMarkerHeader = "X-Reqgate-With"
	// DefaultMarkerValue is DefaultMarkerHeader value
	DefaultMarkerValue = "true"
)

// Interceptor decorates outbound requests with credentials and handles authorization failures
type Interceptor struct {
	store        credential.Store
	navigator    navigation.Navigator
	locator      navigation.Locator
	tokenHeader  string
	markerHeader string
	markerValue  string
	logger       *slog.Logger
}

// Store returns credential store
func (i *Interceptor) Store() credential.Store {
	return i.store
}

// Outbound sets token header when a token is present and the marker header
func (i *Interceptor) Outbound(ctx context.Context, req *http.Request) {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	if token, ok := i.store.Lookup(ctx); ok {
		req.Header.Set(i.tokenHeader, token)
	}
	if i.markerHeader != "" {
		req.Header.Set(i.markerHeader, i.markerValue)
	}
}

// OnSuccess passes response through
func (i *Interceptor) OnSuccess(ctx context.Context, resp *transport.Response) *transport.Response {
	return resp
}

// OnError clears credentials and redirects to login on 401, err is always returned unchanged
func (i *Interceptor) OnError(ctx context.Context, err error) error {
	var statusErr *transport.StatusError
	if !errors.As(err, &statusErr) || !statusErr.IsUnauthorized() {
		return err
	}
	if clearErr := i.store.Clear(ctx); clearErr != nil {
		i.logger.Warn("failed to clear credentials", "error", clearErr)
	}
	if i.navigator == nil {
		return err
	}
	returnPath := ""
	if i.locator != nil {
		returnPath = i.locator.Location(ctx)
	}
	if navErr := i.navigator.RedirectToLogin(ctx, returnPath); navErr != nil {
		i.logger.Warn("failed to redirect to login", "redirect", returnPath, "error", navErr)
	}
	return err
}

// New creates an interceptor
func New(store credential.Store, options ...Option) *Interceptor {
	if store == nil {
		store = credential.NewMemory()
	}
	ret := &Interceptor{
		store:        store,
		tokenHeader:  DefaultTokenHeader,
		markerHeader: DefaultMarkerHeader,
		markerValue:  DefaultMarkerValue,
		logger:       slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
