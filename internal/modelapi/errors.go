package modelapi

import (
	"fmt"
	"time"
)

// AuthenticationError means the API rejected our credentials. Retrying
// cannot help until the key is fixed.
type AuthenticationError struct {
	Status int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("model API rejected credentials (status %d)", e.Status)
}

// RateLimitError means the API refused the call with 429. RetryAfter is
// zero when the response carried no usable Retry-After header.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("model API rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "model API rate limit exceeded"
}

// TimeoutError means the call exceeded the client timeout or the caller's
// context deadline before a response arrived.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("model API call timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// InvalidResponseError means the API answered with an unexpected status
// or a body we could not use.
type InvalidResponseError struct {
	Status int
	Detail string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid model API response (status %d): %s", e.Status, e.Detail)
}
