// Package reqgate wires the request gateway together: credential stores,
// auth interceptor, cancellation registry, HTTP transport and the router
// whose route changes cancel in-flight requests.
//
// Options can be populated from a YAML file (LoadOptions) or CLI flags and
// passed to New:
//
//	options, _ := reqgate.LoadOptions(ctx, "file:///etc/reqgate/config.yaml")
//	client, _ := reqgate.New(ctx, options)
//	defer client.Close()
//	items, err := gateway.Dispatch[[]Item](ctx, client.Gateway, &gateway.Request{URL: "/items"})
//
// Sub-packages can also be used on their own; see gateway, registry, auth,
// credential, navigation and transport.
package reqgate
