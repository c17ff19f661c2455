package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Provider: "courtlistener", StatusCode: 502, Message: "bad gateway"}
	if !strings.Contains(err.Error(), "status=502") {
		t.Fatalf("expected status code in message, got %s", err.Error())
	}
	if !strings.Contains(err.Error(), "courtlistener") {
		t.Fatalf("expected provider name in message, got %s", err.Error())
	}
}

func TestAsStatusErrorUnwraps(t *testing.T) {
	inner := &StatusError{Provider: "courtlistener", StatusCode: 404}
	wrapped := fmt.Errorf("search failed: %w", inner)

	got, ok := AsStatusError(wrapped)
	if !ok || got.StatusCode != 404 {
		t.Fatalf("expected unwrapped status error, got %v (%v)", got, ok)
	}

	if _, ok := AsStatusError(errors.New("plain")); ok {
		t.Fatal("plain errors must not unwrap to StatusError")
	}
}

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	inner := &RateLimitError{Provider: "courtlistener", StatusCode: 429, RetryAfter: 10 * time.Second}
	wrapped := fmt.Errorf("search failed: %w", inner)

	got, ok := AsRateLimitError(wrapped)
	if !ok || got.RetryAfter != 10*time.Second {
		t.Fatalf("expected unwrapped rate limit error, got %v (%v)", got, ok)
	}
}

func TestRateLimitErrorDefaultMessage(t *testing.T) {
	err := &RateLimitError{}
	if err.Error() != "provider rate limited" {
		t.Fatalf("unexpected default message: %s", err.Error())
	}
}
