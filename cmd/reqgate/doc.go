// Command reqgate dispatches a single HTTP request through the request gateway.
//
// The token given with -t is stored in the configured credential stores, sent with the
// request and cleared when the server answers 401, in which case the login route with
// the redirect target is reported.
package main
