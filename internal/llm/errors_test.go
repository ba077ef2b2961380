package llm

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestStatusError(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusUnauthorized, func(err error) bool { var e *ErrAuth; return errors.As(err, &e) }},
		{http.StatusForbidden, func(err error) bool { var e *ErrAuth; return errors.As(err, &e) }},
		{http.StatusNotFound, func(err error) bool { var e *ErrRejected; return errors.As(err, &e) && e.Status == 404 }},
		{http.StatusBadRequest, func(err error) bool { var e *ErrRejected; return errors.As(err, &e) }},
		{http.StatusRequestTimeout, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{http.StatusBadGateway, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{0, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		err := statusError(tt.status, nil, base)
		if !tt.check(err) {
			t.Errorf("statusError(%d) = %T", tt.status, err)
		}
		if !errors.Is(err, base) {
			t.Errorf("statusError(%d) must wrap the SDK error", tt.status)
		}
	}
}

func TestStatusError_RetryAfterHeader(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "7")
	var rl *ErrRateLimit
	if !errors.As(statusError(http.StatusTooManyRequests, h, errors.New("429")), &rl) {
		t.Fatal("expected ErrRateLimit")
	}
	if rl.RetryAfter != 7*time.Second {
		t.Errorf("RetryAfter = %s, want 7s", rl.RetryAfter)
	}

	h.Set("Retry-After", "Wed, 21 Oct 2015 07:28:00 GMT")
	if got := retryAfter(h); got != 0 {
		t.Errorf("HTTP-date Retry-After should be ignored, got %s", got)
	}
}
