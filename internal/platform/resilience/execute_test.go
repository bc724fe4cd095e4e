package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestExecute_OpensAfterFailures(t *testing.T) {
	b := NewCircuitBreaker(2, time.Minute, 1)
	boom := errors.New("connection refused")
	failing := func(context.Context) (int, error) { return 0, boom }

	for i := 0; i < 2; i++ {
		if _, err := Execute(context.Background(), b, failing); !errors.Is(err, boom) {
			t.Fatalf("attempt %d: expected dependency error, got %v", i, err)
		}
	}

	calls := 0
	_, err := Execute(context.Background(), b, func(context.Context) (int, error) {
		calls++
		return 1, nil
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("open breaker must not call the dependency")
	}
}

func TestExecute_CallerCancellationIsNotAFailure(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _ = Execute(ctx, b, func(ctx context.Context) (int, error) { return 0, ctx.Err() })

	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed breaker, got %s", state)
	}
}

func TestNewCircuitBreakerFromConfig(t *testing.T) {
	if b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: false}); b != nil {
		t.Fatalf("disabled config must yield nil breaker")
	}
	b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: true})
	if b == nil || b.failureThreshold != DefaultCircuitBreakerConfig().FailureThreshold {
		t.Fatalf("expected normalized breaker, got %+v", b)
	}

	out, err := Execute(context.Background(), (*CircuitBreaker)(nil), func(context.Context) (string, error) { return "ok", nil })
	if err != nil || out != "ok" {
		t.Fatalf("nil breaker must pass through, got %q %v", out, err)
	}
}
