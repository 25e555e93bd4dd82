package registry

import "errors"

var (
	// ErrSuperseded is the cancellation cause of a request replaced by a newer one with the same key
	ErrSuperseded = errors.New("request superseded")
	// ErrCancelledAll is the cancellation cause used by CancelAll
	ErrCancelledAll = errors.New("all requests cancelled")
)
