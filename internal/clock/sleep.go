// Package clock provides context-aware waiting and polling helpers.
package clock

import (
	"context"
	"errors"
	"time"
)

// ErrAttemptsExhausted reports that a Poll ran out of attempts before the
// condition held.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Poll invokes fn up to attempts times with interval-long pauses between
// tries. It stops early when fn reports done or fails, and returns
// ErrAttemptsExhausted when every try reports not done. No pause follows
// the final try.
func Poll(ctx context.Context, interval time.Duration, attempts int, fn func(context.Context) (bool, error)) error {
	for i := 0; i < attempts; i++ {
		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if i == attempts-1 {
			break
		}
		if err := SleepWithContext(ctx, interval); err != nil {
			return err
		}
	}
	return ErrAttemptsExhausted
}
