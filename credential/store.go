package credential

import "context"

// Store holds a single optional auth token
type Store interface {
	// Lookup returns current token, false when absent or expired
	Lookup(ctx context.Context) (string, bool)
	// Set replaces current token, empty token clears the store
	Set(ctx context.Context, token string) error
	// Clear removes current token
	Clear(ctx context.Context) error
}
