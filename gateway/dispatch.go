package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/reqgate/transport"
)

// Dispatch dispatches request and unwraps response into T
func Dispatch[T any](ctx context.Context, g *Gateway, request *Request) (T, error) {
	resp, err := g.Do(ctx, request)
	if err != nil {
		var zero T
		return zero, err
	}
	return Unwrap[T](resp)
}

// Unwrap returns the envelope itself for binary response, decoded payload otherwise
func Unwrap[T any](resp *transport.Response) (T, error) {
	var result T
	if resp.Kind == transport.KindBinary {
		envelope, ok := any(resp).(T)
		if !ok {
			return result, fmt.Errorf("%w: binary response unwraps to %T, got %T target", ErrResponseKind, resp, &result)
		}
		return envelope, nil
	}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return result, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}
