package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestHandle(key string) (*Handle, context.Context) {
	ctx, cancel := context.WithCancelCause(context.Background())
	return NewHandle("", key, cancel), ctx
}

func TestRegistry_Register(t *testing.T) {
	var testCases = []struct {
		description string
		keys        []string
		expectLive  []bool
		expectLen   int
	}{
		{
			description: "distinct keys do not collide",
			keys:        []string{"/items-GET", "/items-POST", "/users-GET"},
			expectLive:  []bool{true, true, true},
			expectLen:   3,
		},
		{
			description: "same key supersedes older handle",
			keys:        []string{"/items-GET", "/items-GET"},
			expectLive:  []bool{false, true},
			expectLen:   1,
		},
		{
			description: "only the last of many survives",
			keys:        []string{"/items-GET", "/items-GET", "/items-GET", "/users-GET"},
			expectLive:  []bool{false, false, true, true},
			expectLen:   2,
		},
	}

	for _, testCase := range testCases {
		r := New()
		var contexts []context.Context
		for _, key := range testCase.keys {
			handle, ctx := newTestHandle(key)
			contexts = append(contexts, ctx)
			r.Register(key, handle)
		}
		for i, ctx := range contexts {
			if testCase.expectLive[i] {
				assert.Nil(t, ctx.Err(), testCase.description)
				continue
			}
			assert.ErrorIs(t, context.Cause(ctx), ErrSuperseded, testCase.description)
		}
		assert.Equal(t, testCase.expectLen, r.Len(), testCase.description)
	}
}

func TestRegistry_Release(t *testing.T) {
	r := New()
	handle, ctx := newTestHandle("/items-GET")
	r.Register("/items-GET", handle)
	r.Release("/items-GET")
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, ctx.Err())
	assert.False(t, handle.Cancelled())

	r.Release("/missing-GET")
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ReleaseHandle(t *testing.T) {
	r := New()
	first, _ := newTestHandle("/items-GET")
	second, secondCtx := newTestHandle("/items-GET")
	r.Register("/items-GET", first)
	r.Register("/items-GET", second)

	assert.False(t, r.ReleaseHandle(first))
	current, ok := r.Lookup("/items-GET")
	assert.True(t, ok)
	assert.Same(t, second, current)

	assert.True(t, r.ReleaseHandle(second))
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, secondCtx.Err())
	assert.False(t, r.ReleaseHandle(nil))
}

func TestRegistry_CancelAll(t *testing.T) {
	r := New()
	var contexts []context.Context
	for i := 0; i < 3; i++ {
		handle, ctx := newTestHandle(fmt.Sprintf("/items/%d-GET", i))
		r.Register(handle.Key(), handle)
		contexts = append(contexts, ctx)
	}
	assert.Equal(t, 3, r.CancelAll())
	assert.Equal(t, 0, r.Len())
	for _, ctx := range contexts {
		assert.ErrorIs(t, context.Cause(ctx), ErrCancelledAll)
	}
	assert.Equal(t, 0, r.CancelAll())
}

func TestHandle_Cancel(t *testing.T) {
	handle, ctx := newTestHandle("/items-GET")
	assert.NotEmpty(t, handle.ID())
	assert.True(t, handle.Cancel(ErrSuperseded))
	assert.False(t, handle.Cancel(ErrCancelledAll))
	assert.True(t, handle.Cancelled())
	assert.ErrorIs(t, context.Cause(ctx), ErrSuperseded)

	named := NewHandle("request-1", "/items-GET", nil)
	assert.Equal(t, "request-1", named.ID())
	assert.True(t, named.Cancel(ErrSuperseded))
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	r := New()
	const workers = 32
	handles := make([]*Handle, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		handles[i], _ = newTestHandle("/items-GET")
		wg.Add(1)
		go func(h *Handle) {
			defer wg.Done()
			r.Register("/items-GET", h)
		}(handles[i])
	}
	wg.Wait()

	live := 0
	for _, h := range handles {
		if !h.Cancelled() {
			live++
		}
	}
	assert.Equal(t, 1, live)
	current, ok := r.Lookup("/items-GET")
	assert.True(t, ok)
	assert.False(t, current.Cancelled())
	assert.Equal(t, []string{"/items-GET"}, r.Keys())
}
