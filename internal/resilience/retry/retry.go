// Package retry waits out transient failures with capped exponential
// backoff. The API uses it once, to ride out a database that is still
// starting when the process boots.
package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"ncnews/internal/infra/db/pgerr"
)

// Backoff is a retry schedule. The n-th wait is Base*Factor^(n-1), capped
// at Cap, plus up to Jitter of itself at random.
type Backoff struct {
	Attempts int // total calls, including the first
	Base     time.Duration
	Cap      time.Duration
	Factor   float64
	Jitter   float64 // 0..1
}

// StartupBackoff gives a freshly started Postgres container roughly
// fifteen seconds to accept connections.
func StartupBackoff() Backoff {
	return Backoff{
		Attempts: 8,
		Base:     250 * time.Millisecond,
		Cap:      5 * time.Second,
		Factor:   2,
		Jitter:   0.1,
	}
}

// Delay returns the un-jittered wait after the n-th failed attempt.
func (b Backoff) Delay(n int) time.Duration {
	if n < 1 {
		return 0
	}
	d := float64(b.Base) * math.Pow(b.Factor, float64(n-1))
	if b.Cap > 0 && d > float64(b.Cap) {
		return b.Cap
	}
	return time.Duration(d)
}

// Do calls op until it succeeds, returns an error IsTransient rejects, the
// attempts run out or ctx ends. Exhaustion wraps the last error.
func Do(ctx context.Context, b Backoff, op func(ctx context.Context) error) error {
	attempts := max(b.Attempts, 1)

	var err error
	for n := 1; ; n++ {
		if err = op(ctx); err == nil {
			if n > 1 {
				slog.Info("succeeded after retry", slog.Int("attempt", n))
			}
			return nil
		}
		if !IsTransient(err) {
			return err
		}
		if n == attempts {
			return fmt.Errorf("gave up after %d attempts: %w", attempts, err)
		}

		wait := withJitter(b.Delay(n), b.Jitter)
		slog.Warn("transient failure, retrying",
			slog.Int("attempt", n),
			slog.Int("max_attempts", attempts),
			slog.Duration("wait", wait),
			slog.Any("error", err))

		t := time.NewTimer(wait)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}
	}
}

// IsTransient reports whether err looks like a database that is not up
// yet: refused or reset dials, dial timeouts, a dropped pooled connection
// or SQLSTATE 57P03. Cancellation is never transient.
func IsTransient(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, driver.ErrBadConn):
		return true
	case pgerr.IsServerError(err):
		return pgerr.Is(err, pgerr.CannotConnectNow)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	for _, errno := range []syscall.Errno{syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ETIMEDOUT, syscall.ENETUNREACH} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

func withJitter(d time.Duration, frac float64) time.Duration {
	if frac <= 0 || d <= 0 {
		return d
	}
	frac = min(frac, 1)
	// #nosec G404 -- jitter does not need cryptographic randomness.
	return d + time.Duration(rand.Float64()*frac*float64(d))
}
