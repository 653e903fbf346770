// Package retry repeats an operation until it succeeds, runs out of
// attempts or its context is done.
package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	defaultBaseDelay = 100 * time.Millisecond
	defaultMaxDelay  = 5 * time.Second
)

// A Backoff returns the pause before the next attempt. attempt starts at 1.
type Backoff func(attempt int) time.Duration

// A Policy zero value makes one attempt and retries any error.
type Policy struct {
	Attempts  int
	Backoff   Backoff
	Retryable func(error) bool
}

func (p Policy) withDefaults() Policy {
	if p.Attempts <= 0 {
		p.Attempts = 1
	}
	if p.Backoff == nil {
		p.Backoff = Exponential(defaultBaseDelay, defaultMaxDelay)
	}
	if p.Retryable == nil {
		p.Retryable = func(error) bool { return true }
	}
	return p
}

// Exponential doubles base on every attempt up to ceiling and adds up to half
// of the pause as jitter.
func Exponential(base, ceiling time.Duration) Backoff {
	return func(attempt int) time.Duration {
		d := base
		for i := 1; i < attempt && d < ceiling; i++ {
			d *= 2
		}
		d = min(d, ceiling)
		if half := int64(d / 2); half > 0 {
			d += time.Duration(rand.Int64N(half))
		}
		return d
	}
}

func Constant(d time.Duration) Backoff {
	return func(int) time.Duration {
		return d
	}
}

func (p Policy) Do(ctx context.Context, fn func(context.Context) error) error {
	_, err := Value(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Value runs fn under p and returns its first successful result. When the
// context ends during a pause the error wraps both the context error and
// the last fn error.
func Value[T any](
	ctx context.Context, p Policy, fn func(context.Context) (T, error),
) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	p = p.withDefaults()
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for attempt := 1; ; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if attempt >= p.Attempts || !p.Retryable(err) {
			return zero, err
		}

		timer.Reset(p.Backoff(attempt))
		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}
}
