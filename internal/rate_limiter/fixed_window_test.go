package ratelimiter

import (
	"testing"
	"time"

	"github.com/visalhout/PagePair/internal/config"
)

func TestFixedWindowLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 2,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	if ok, _ := limiter.Allow("1.2.3.4"); !ok {
		t.Fatal("first request should pass")
	}
	if ok, _ := limiter.Allow("1.2.3.4"); !ok {
		t.Fatal("second request should pass")
	}

	ok, retryAfter := limiter.Allow("1.2.3.4")
	if ok {
		t.Fatal("third request should be limited")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("unexpected retry-after %s", retryAfter)
	}

	// other clients have their own window
	if ok, _ := limiter.Allow("5.6.7.8"); !ok {
		t.Error("different client should not be limited")
	}
}

func TestFixedWindowLimiterDisabled(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            time.Minute,
		Enabled:              false,
	}, nil)

	for i := 0; i < 10; i++ {
		if ok, _ := limiter.Allow("1.2.3.4"); !ok {
			t.Fatal("disabled limiter must always allow")
		}
	}
}
