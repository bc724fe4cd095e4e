// Package guard wraps data-source repositories with a per-call timeout, a
// circuit breaker and source metrics.
package guard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/resilience"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
	crerr "github.com/cockroachdb/errors"
)

// Observer records source calls.
type Observer interface {
	ObserveSource(source, dataset string, err error, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveSource(string, string, error, time.Duration) {}

// Source is one guarded data source.
type Source struct {
	name     string
	timeout  time.Duration
	breaker  *resilience.CircuitBreaker
	observer Observer
	logger   *logging.Logger
}

type Option func(*Source)

func WithBreaker(b *resilience.CircuitBreaker) Option {
	return func(s *Source) { s.breaker = b }
}

func WithObserver(o Observer) Option {
	return func(s *Source) {
		if o != nil {
			s.observer = o
		}
	}
}

func WithLogger(l *logging.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewSource(name string, timeout time.Duration, opts ...Option) *Source {
	s := &Source{
		name:     name,
		timeout:  timeout,
		observer: nopObserver{},
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

// call runs fn under the source policies. Failures come back wrapping
// usecase.ErrDependencyUnavailable with the driver error kept as the
// secondary cause.
func call[T any](ctx context.Context, s *Source, dataset string, fn func(context.Context) (T, error)) (T, error) {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := resilience.Execute(callCtx, s.breaker, fn)
	s.observer.ObserveSource(s.name, dataset, err, time.Since(start))
	if err == nil {
		return out, nil
	}

	var zero T
	if ctx.Err() != nil {
		return zero, ctx.Err()
	}

	reason := "query failed"
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen):
		reason = "circuit open"
	case errors.Is(err, context.DeadlineExceeded):
		reason = fmt.Sprintf("timed out after %s", s.timeout)
	}
	s.logger.WarnContext(ctx, "data source call failed",
		"source", s.name,
		"dataset", dataset,
		"reason", reason,
		"error", err,
	)

	primary := fmt.Errorf("%w: %s %s %s", usecase.ErrDependencyUnavailable, s.name, dataset, reason)
	return zero, crerr.WithSecondaryError(primary, err)
}
