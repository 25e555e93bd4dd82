package gateway

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/viant/reqgate/auth"
	"github.com/viant/reqgate/registry"
	"github.com/viant/reqgate/transport"
)

// RequestIDHeader carries per dispatch request id
const RequestIDHeader = "X-Request-Id"

// Gateway dispatches requests through auth interceptor, cancellation registry and transport
type Gateway struct {
	registry    *registry.Registry
	interceptor *auth.Interceptor
	transport   transport.Transport
	keyFunc     KeyFunc
	logger      *slog.Logger
}

// Registry returns cancellation registry
func (g *Gateway) Registry() *registry.Registry {
	return g.registry
}

// Interceptor returns auth interceptor
func (g *Gateway) Interceptor() *auth.Interceptor {
	return g.interceptor
}

// CancelAll cancels every registered in-flight request
func (g *Gateway) CancelAll() int {
	return g.registry.CancelAll()
}

// Key returns the key Do registers request under, empty for an invalid request
func (g *Gateway) Key(request *Request) string {
	normalized, err := request.normalize()
	if err != nil {
		return ""
	}
	return g.keyFunc(normalized)
}

// Do dispatches request and returns response envelope
func (g *Gateway) Do(ctx context.Context, request *Request) (*transport.Response, error) {
	req, err := request.normalize()
	if err != nil {
		return nil, err
	}
	key := g.keyFunc(req)
	requestID := req.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		req.Header.Set(RequestIDHeader, requestID)
	}
	if ctx.Err() != nil {
		// a dead caller must not supersede the live request sharing its key
		return nil, &CancellationError{Key: key, RequestID: requestID, Cause: context.Cause(ctx)}
	}
	body, err := req.body()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	httpRequest, err := g.transport.NewRequest(transport.WithKind(ctx, req.Kind), req.Method, req.path(), body)
	if err != nil {
		return nil, err
	}
	for name, values := range req.Header {
		httpRequest.Header[name] = values
	}

	var handle *registry.Handle
	if !req.Parallel {
		handle = registry.NewHandle(requestID, key, cancel)
		g.registry.Register(key, handle)
	}
	g.interceptor.Outbound(ctx, httpRequest)
	g.logger.Debug("dispatch", "id", requestID, "key", key, "url", httpRequest.URL.String(), "parallel", req.Parallel, "kind", req.Kind.String())

	resp, err := g.transport.Do(httpRequest)
	if err != nil {
		if cancelled := g.cancellation(ctx, key, requestID, handle); cancelled != nil {
			g.logger.Debug("cancelled", "id", requestID, "key", key, "cause", context.Cause(ctx))
			return nil, cancelled
		}
		g.release(handle)
		g.logger.Debug("failed", "id", requestID, "key", key, "error", err)
		return nil, g.interceptor.OnError(ctx, err)
	}
	g.release(handle)
	g.logger.Debug("completed", "id", requestID, "key", key, "status", resp.StatusCode)
	return g.interceptor.OnSuccess(ctx, resp), nil
}

// cancellation returns *CancellationError when ctx was cancelled by registry or by caller
func (g *Gateway) cancellation(ctx context.Context, key, requestID string, handle *registry.Handle) error {
	if handle != nil && handle.Cancelled() {
		// registry already dropped or replaced the entry
		return &CancellationError{Key: key, RequestID: handle.ID(), Cause: context.Cause(ctx)}
	}
	if !errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	g.release(handle)
	return &CancellationError{Key: key, RequestID: requestID, Cause: context.Cause(ctx)}
}

func (g *Gateway) release(handle *registry.Handle) {
	if handle == nil {
		return
	}
	g.registry.ReleaseHandle(handle)
}

// New creates a gateway
func New(options ...Option) (*Gateway, error) {
	ret := &Gateway{keyFunc: DefaultKey}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.registry == nil {
		ret.registry = registry.New(registry.WithLogger(ret.logger))
	}
	if ret.interceptor == nil {
		ret.interceptor = auth.New(nil, auth.WithLogger(ret.logger))
	}
	if ret.keyFunc == nil {
		ret.keyFunc = DefaultKey
	}
	if ret.transport == nil {
		t, err := transport.New()
		if err != nil {
			return nil, err
		}
		ret.transport = t
	}
	return ret, nil
}
