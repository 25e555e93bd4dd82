package transport

import "context"

type (
	contextKey string
)

const (
	ContextKindKey contextKey = "responseKind"
)

// WithKind returns context carrying response kind
func WithKind(ctx context.Context, kind Kind) context.Context {
	return context.WithValue(ctx, ContextKindKey, kind)
}

// KindFrom returns response kind carried by context, KindJSON by default
func KindFrom(ctx context.Context) Kind {
	if v := ctx.Value(ContextKindKey); v != nil {
		if kind, ok := v.(Kind); ok {
			return kind
		}
	}
	return KindJSON
}
