package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrBodyTooLarge is returned when response body exceeds configured limit
var ErrBodyTooLarge = errors.New("transport: response body too large")

// Transport represents HTTP boundary
type Transport interface {
	// NewRequest creates request with path resolved against base URL
	NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error)
	// Do sends request and returns response envelope, non-2xx status is reported as *StatusError
	Do(req *http.Request) (*Response, error)
}

// HTTP is net/http based Transport
type HTTP struct {
	baseURL      string
	timeout      time.Duration
	roundTripper http.RoundTripper
	middlewares  []Middleware
	jar          http.CookieJar
	maxBodySize  int64
	client       *http.Client
}

// BaseURL returns base URL
func (h *HTTP) BaseURL() string {
	return h.baseURL
}

// Client returns underlying client
func (h *HTTP) Client() *http.Client {
	return h.client
}

// Resolve resolves path against base URL
func (h *HTTP) Resolve(path string) (*url.URL, error) {
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return u, nil
	}
	if h.baseURL == "" {
		return nil, fmt.Errorf("relative path %q requires base URL", path)
	}
	joined := strings.TrimRight(h.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	return url.Parse(joined)
}

func (h *HTTP) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u, err := h.Resolve(path)
	if err != nil {
		return nil, err
	}
	return http.NewRequestWithContext(ctx, method, u.String(), body)
}

func (h *HTTP) Do(req *http.Request) (*Response, error) {
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	body, err := readAll(resp.Body, h.maxBodySize)
	if err != nil {
		return nil, err
	}
	ret := &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
		Kind:       KindFrom(req.Context()),
		Request:    req,
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{Response: ret}
	}
	return ret, nil
}

func readAll(body io.ReadCloser, limit int64) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	defer body.Close()
	if limit <= 0 {
		return io.ReadAll(body)
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrBodyTooLarge
	}
	return data, nil
}

// New creates HTTP transport
func New(options ...Option) (*HTTP, error) {
	ret := &HTTP{
		timeout:     DefaultTimeout,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.baseURL != "" {
		if _, err := url.Parse(ret.baseURL); err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", ret.baseURL, err)
		}
	}
	middlewares := append([]Middleware{Cookies(ret.jar)}, ret.middlewares...)
	ret.client = &http.Client{Transport: Chain(ret.roundTripper, middlewares...)}
	if ret.timeout > 0 {
		ret.client.Timeout = ret.timeout
	}
	return ret, nil
}
