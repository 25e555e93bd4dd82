// Package transport implements the HTTP boundary used by the request gateway.
//
// It resolves request paths against a configurable base URL, enforces a
// client level timeout (60 seconds by default), reads response bodies into a
// Response envelope and reports non-2xx statuses as *StatusError. Requests are
// cancelled through their context, so any cancel function bound to the request
// context aborts the exchange.
//
// Additional behaviour such as metrics or header injection can be layered on
// the underlying http.RoundTripper with WithMiddlewares. WithCookieJar installs
// the Cookies middleware outermost, so jar cookies are sent even when a custom
// RoundTripper is supplied.
package transport
