package api

import (
	"fmt"

	"github.com/dmitrijs2005/tablekeeper/internal/common"
)

// Kind classifies a request failure.
type Kind int

const (
	// KindTimeout means the request exceeded the configured timeout.
	KindTimeout Kind = iota + 1
	// KindAuthRejected means the server returned HTTP 401. The client has
	// already cleared the local session by the time the caller sees this.
	KindAuthRejected
	// KindServerRejected covers every other non-success response; Status and
	// Message carry what the server said.
	KindServerRejected
	// KindUnavailable means the request never completed (connection refused,
	// DNS failure, ...).
	KindUnavailable
)

// Error is the failure type surfaced by every api call.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTimeout:
		return "request timed out"
	case KindAuthRejected:
		return "authentication rejected"
	case KindUnavailable:
		return fmt.Sprintf("server unavailable: %s", e.Message)
	default:
		if e.Message != "" {
			return e.Message
		}
		return fmt.Sprintf("server rejected request (status %d)", e.Status)
	}
}

// Unwrap maps each kind to a shared sentinel so callers can match with
// errors.Is without importing transport details.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindTimeout:
		return common.ErrorTimeout
	case KindAuthRejected:
		return common.ErrorUnauthorized
	case KindUnavailable:
		return common.ErrorUnavailable
	default:
		return nil
	}
}
