package flicks

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the catalog has no movie for the requested
// identifier. Wrapped by Error, so errors.Is works through it.
var ErrNotFound = errors.New("movie not found")

// Reason classifies a client failure. Pages may collapse reasons into
// one presentation, but the distinction survives into logs and tests.
type Reason string

const (
	ReasonInvalid  Reason = "invalid"   // rejected locally, nothing was sent
	ReasonNetwork  Reason = "network"   // transport failure
	ReasonNotFound Reason = "not_found" // HTTP 404
	ReasonRemote   Reason = "remote"    // any other non-2xx status
	ReasonDecode   Reason = "decode"    // malformed response body
)

// Error is the failure type returned by every client operation.
type Error struct {
	Op     string // operation that failed, e.g. "structural search"
	Reason Reason
	Status int   // HTTP status when a response was received
	Err    error // underlying cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flicks: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("flicks: %s: %s", e.Op, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ReasonOf extracts the failure reason, or "" for foreign errors.
func ReasonOf(err error) Reason {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Reason
	}
	return ""
}
