// Package gateway is the single entry point for outbound HTTP calls.
//
// Each dispatch is keyed by URL and method. A non-parallel request registers a
// cancel handle under its key, so dispatching the same key again cancels the
// older in-flight request; that request fails with *CancellationError which
// callers can recognise with IsCancellation and ignore. Requests marked
// Parallel never register a handle and never cancel each other.
//
// The auth interceptor adds the current token to every request and, when the
// server answers 401 Unauthorized, clears the credential store and redirects
// to the login route before the error is returned to the caller.
//
// Dispatch decodes a JSON payload into the requested type; a request of
// transport.KindBinary resolves with the whole *transport.Response envelope:
//
//	items, err := gateway.Dispatch[[]Item](ctx, gw, &gateway.Request{URL: "/items"})
//	if gateway.IsCancellation(err) {
//		return // superseded by a newer /items request
//	}
//
//	file, err := gateway.Dispatch[*transport.Response](ctx, gw, &gateway.Request{
//		URL:  "/reports/1/export",
//		Kind: transport.KindBinary,
//	})
package gateway
