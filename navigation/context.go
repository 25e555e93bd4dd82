package navigation

import "context"

type contextKey string

const ContextLocationKey contextKey = "location"

// WithLocation returns context carrying location, it takes precedence over router location
func WithLocation(ctx context.Context, location string) context.Context {
	return context.WithValue(ctx, ContextLocationKey, location)
}

func locationFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v := ctx.Value(ContextLocationKey); v != nil {
		location, ok := v.(string)
		return location, ok && location != ""
	}
	return "", false
}
