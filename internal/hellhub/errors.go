package hellhub

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes client failures so callers can map them onto the
// tool envelope without string matching.
type ErrorKind int

const (
	// KindRequest is a transport-level failure: the request never produced
	// a usable HTTP response (dial error, timeout, cancelled context).
	KindRequest ErrorKind = iota
	// KindStatus is a non-2xx HTTP response from the API.
	KindStatus
	// KindDecode means the response body did not parse as the expected JSON.
	KindDecode
	// KindUnavailable marks operations the HellHub API does not serve.
	KindUnavailable
	// KindAPI is an error reported inside a successful response envelope.
	KindAPI
)

func (k ErrorKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindUnavailable:
		return "unavailable"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all Client methods.
type Error struct {
	Kind       ErrorKind
	Op         string // the operation that failed, e.g. "get /war"
	StatusCode int    // set for KindStatus
	Err        error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("hellhub: %s: unexpected status %d", e.Op, e.StatusCode)
	case KindUnavailable:
		return fmt.Sprintf("hellhub: %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("hellhub: %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrEndpointUnavailable is wrapped by errors of KindUnavailable.
var ErrEndpointUnavailable = errors.New("endpoint is not available in the HellHub Collective API")

// KindOf extracts the ErrorKind from err, defaulting to KindRequest for
// errors that did not come from this package.
func KindOf(err error) ErrorKind {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind
	}
	return KindRequest
}
