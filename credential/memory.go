package credential

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
)

// Memory is a session scoped store
type Memory struct {
	mu    sync.RWMutex
	token *oauth2.Token
}

func (m *Memory) Lookup(ctx context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return accessToken(m.token)
}

func (m *Memory) Set(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token == "" {
		m.token = nil
		return nil
	}
	m.token = NewToken(token)
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = nil
	return nil
}

// NewMemory creates memory store
func NewMemory() *Memory {
	return &Memory{}
}
