package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is wrapped by errors from a remote backend that could not be
// reached or did not answer.
var ErrUnavailable = errors.New("cache backend unavailable")

// transientError marks an error worth retrying.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Transient marks err as worth retrying. Transient(nil) is nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether err, or an error it wraps, was marked with
// [Transient].
func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// Backoff is a bounded exponential retry schedule.
type Backoff struct {
	Attempts int           // total calls, including the first
	Delay    time.Duration // wait before the second call
	Max      time.Duration // cap on a single wait; zero means uncapped
}

// ConnectBackoff is used when opening remote backends.
var ConnectBackoff = Backoff{Attempts: 3, Delay: 200 * time.Millisecond, Max: 2 * time.Second}

// Retry calls fn until it succeeds, returns an error not marked [Transient],
// or the attempts are used up. Waiting stops early when ctx is done.
func (b Backoff) Retry(ctx context.Context, fn func() error) error {
	delay := b.Delay
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsTransient(err) || attempt >= b.Attempts {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if b.Max > 0 && delay > b.Max {
			delay = b.Max
		}
	}
}
