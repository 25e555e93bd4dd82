// Package auth contains the interceptor that decorates outbound requests with
// the current token and reacts to 401 Unauthorized responses.
//
// On 401 the interceptor clears the credential store and redirects to the
// login route carrying the current location; the original error is always
// returned so callers still observe the failure.
package auth
