package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled matches every *CancellationError
	ErrCancelled = errors.New("request cancelled")
	// ErrResponseKind is returned when dispatch target does not match response kind
	ErrResponseKind = errors.New("response kind mismatch")
)

// CancellationError reports a request aborted by supersession, CancelAll or caller context
type CancellationError struct {
	Key       string
	RequestID string
	Cause     error
}

func (e *CancellationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("request %v (%v) cancelled", e.Key, e.RequestID)
	}
	return fmt.Sprintf("request %v (%v) cancelled: %v", e.Key, e.RequestID, e.Cause)
}

func (e *CancellationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrCancelled}
	}
	return []error{ErrCancelled, e.Cause}
}

// IsCancellation returns true if err is a cancellation, UI layers usually ignore it
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCancelled)
}
