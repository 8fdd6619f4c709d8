package clipboard

import (
	"context"
	"time"
)

const (
	// DefaultOpenTimeout bounds how long the native backend waits for other
	// processes to release the clipboard.
	DefaultOpenTimeout = time.Second

	acquireInterval = time.Millisecond
)

// Clock tells the time. Tests substitute a fake one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// acquire calls try until it succeeds, the timeout elapses or ctx is done.
// On timeout the error from the last attempt is returned. The clipboard only
// offers a non-blocking open, hence the polling.
func acquire(ctx context.Context, clock Clock, timeout time.Duration, try func() error) error {
	if clock == nil {
		clock = systemClock{}
	}
	if timeout <= 0 {
		timeout = DefaultOpenTimeout
	}

	limit := clock.Now().Add(timeout)
	var err error
	for {
		if err = try(); err == nil {
			return nil
		}
		if !clock.Now().Before(limit) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(acquireInterval):
		}
	}
}
