package registry

import (
	"log/slog"
	"sort"
	"sync"
)

// Registry maps request key to the live handle of the latest non-parallel request
type Registry struct {
	mux     sync.Mutex
	handles map[string]*Handle
	logger  *slog.Logger
}

// Register stores handle under key, cancelling a previously registered live handle
func (r *Registry) Register(key string, handle *Handle) {
	if handle == nil {
		return
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if prev, ok := r.handles[key]; ok && prev != handle {
		if prev.Cancel(ErrSuperseded) {
			r.logger.Debug("request superseded", "key", key, "id", prev.id, "by", handle.id)
		}
	}
	r.handles[key] = handle
}

// Release removes key without cancelling its handle
func (r *Registry) Release(key string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.handles, key)
}

// ReleaseHandle removes handle's key only while the key still belongs to handle
func (r *Registry) ReleaseHandle(handle *Handle) bool {
	if handle == nil {
		return false
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if current, ok := r.handles[handle.key]; ok && current == handle {
		delete(r.handles, handle.key)
		return true
	}
	return false
}

// CancelAll cancels and removes every live handle, it returns number of cancelled requests
func (r *Registry) CancelAll() int {
	r.mux.Lock()
	handles := r.handles
	r.handles = make(map[string]*Handle)
	r.mux.Unlock()

	count := 0
	for _, handle := range handles {
		if handle.Cancel(ErrCancelledAll) {
			count++
		}
	}
	if count > 0 {
		r.logger.Debug("requests cancelled", "count", count)
	}
	return count
}

// Lookup returns live handle for key
func (r *Registry) Lookup(key string) (*Handle, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	handle, ok := r.handles[key]
	return handle, ok
}

// Len returns number of registered keys
func (r *Registry) Len() int {
	r.mux.Lock()
	defer r.mux.Unlock()
	return len(r.handles)
}

// Keys returns sorted registered keys
func (r *Registry) Keys() []string {
	r.mux.Lock()
	keys := make([]string, 0, len(r.handles))
	for key := range r.handles {
		keys = append(keys, key)
	}
	r.mux.Unlock()
	sort.Strings(keys)
	return keys
}

// New creates a registry
func New(options ...Option) *Registry {
	ret := &Registry{
		handles: make(map[string]*Handle),
		logger:  slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
