package providers

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{StatusCode: 429, RetryAfter: time.Minute}
	if got := err.Error(); got != "provider rate limited (status=429)" {
		t.Fatalf("unexpected message %q", got)
	}

	err = &RateLimitError{Message: "too many requests"}
	if got := err.Error(); got != "too many requests" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAsRateLimitError(t *testing.T) {
	inner := &RateLimitError{StatusCode: 429}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	rl, ok := AsRateLimitError(wrapped)
	if !ok || rl.StatusCode != 429 {
		t.Fatalf("expected unwrapped rate limit error, got %v ok=%v", rl, ok)
	}

	if _, ok := AsRateLimitError(errors.New("plain")); ok {
		t.Fatal("plain error should not unwrap to RateLimitError")
	}
}
