// Package registry tracks in-flight requests by request key so that a newer
// request with the same key supersedes (cancels) the older one.
//
// A Handle wraps the cancel function of one in-flight request. Registering a
// handle for a key that already holds a live handle cancels the previous one
// first; releasing a key forgets the handle without cancelling it. CancelAll
// cancels and forgets every live handle, typically on route change.
package registry
