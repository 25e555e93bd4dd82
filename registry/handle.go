package registry

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle aborts one in-flight request
type Handle struct {
	id        string
	key       string
	cancel    context.CancelCauseFunc
	cancelled atomic.Bool
}

// ID returns handle id, the gateway uses the dispatch request id
func (h *Handle) ID() string {
	return h.id
}

// Key returns request key
func (h *Handle) Key() string {
	return h.key
}

// Cancel aborts the request with the supplied cause, it returns false if the handle was already cancelled
func (h *Handle) Cancel(cause error) bool {
	if !h.cancelled.CompareAndSwap(false, true) {
		return false
	}
	if h.cancel != nil {
		h.cancel(cause)
	}
	return true
}

// Cancelled returns true if Cancel was called
func (h *Handle) Cancelled() bool {
	return h.cancelled.Load()
}

// NewHandle creates a handle bound to cancel, empty id is replaced with a generated one
func NewHandle(id, key string, cancel context.CancelCauseFunc) *Handle {
	if id == "" {
		id = uuid.NewString()
	}
	return &Handle{id: id, key: key, cancel: cancel}
}
