package coach

import "errors"

var (
	// ErrUnavailable indicates the coaching service is unreachable.
	ErrUnavailable = errors.New("coaching service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("coaching request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("coaching retry attempts exhausted")
)
