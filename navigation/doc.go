// Package navigation models the client side route the gateway redirects to
// when a request is rejected with 401 Unauthorized.
//
// Router keeps the current location, builds the login target carrying the
// current location as the redirect query value and notifies OnChange listeners
// on every route change; the gateway listens to cancel in-flight requests.
package navigation
