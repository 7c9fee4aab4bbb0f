package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewRateLimiterWithConfig(client, maxAttempts, window), mr
}

func TestRateLimiterAllow(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit and denies after", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 5, time.Minute)

		for i := 1; i <= 5; i++ {
			allowed, err := limiter.Allow(ctx, "10.0.0.1")
			if err != nil {
				t.Fatalf("attempt %d: unexpected error: %v", i, err)
			}
			if !allowed {
				t.Fatalf("attempt %d: expected to be allowed", i)
			}
		}

		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed {
			t.Error("expected the sixth attempt to be denied")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, time.Minute)

		if allowed, _ := limiter.Allow(ctx, "10.0.0.1"); !allowed {
			t.Fatal("expected first attempt to be allowed")
		}
		if allowed, _ := limiter.Allow(ctx, "10.0.0.1"); allowed {
			t.Fatal("expected second attempt to be denied")
		}
		if allowed, _ := limiter.Allow(ctx, "10.0.0.2"); !allowed {
			t.Error("expected a different key to have its own budget")
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		limiter, mr := newTestLimiter(t, 1, time.Minute)

		if allowed, _ := limiter.Allow(ctx, "10.0.0.1"); !allowed {
			t.Fatal("expected first attempt to be allowed")
		}
		if allowed, _ := limiter.Allow(ctx, "10.0.0.1"); allowed {
			t.Fatal("expected second attempt to be denied")
		}

		mr.FastForward(time.Minute + time.Second)

		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Error("expected a fresh window after expiry")
		}
	})

	t.Run("reset clears the counter", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, time.Minute)

		if allowed, _ := limiter.Allow(ctx, "10.0.0.1"); !allowed {
			t.Fatal("expected first attempt to be allowed")
		}
		if err := limiter.Reset(ctx, "10.0.0.1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed, _ := limiter.Allow(ctx, "10.0.0.1"); !allowed {
			t.Error("expected a fresh budget after reset")
		}
	})

	t.Run("redis failure surfaces as an error", func(t *testing.T) {
		limiter, mr := newTestLimiter(t, 5, time.Minute)
		mr.Close()

		if _, err := limiter.Allow(ctx, "10.0.0.1"); err == nil {
			t.Error("expected an error when redis is unreachable")
		}
	})
}
