package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable signals a provider that is not configured or wired.
var ErrProviderUnavailable = errors.New("provider unavailable")

// StatusError captures a non-success response from an upstream endpoint.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
