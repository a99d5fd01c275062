package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quick(attempts int) Backoff {
	return Backoff{Attempts: attempts, Base: time.Millisecond, Cap: 4 * time.Millisecond, Factor: 2}
}

// counting returns an op that fails with errs in turn, then succeeds.
func counting(calls *int, errs ...error) func(context.Context) error {
	return func(context.Context) error {
		*calls++
		if *calls <= len(errs) {
			return errs[*calls-1]
		}
		return nil
	}
}

/* ───── Do ───── */

func TestDo_FirstTry(t *testing.T) {
	calls := 0
	require.NoError(t, Do(context.Background(), quick(3), counting(&calls)))
	assert.Equal(t, 1, calls)
}

func TestDo_RecoversFromTransientFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), quick(3), counting(&calls, syscall.ECONNREFUSED, driver.ErrBadConn))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_GivesUp(t *testing.T) {
	calls := 0
	err := Do(context.Background(), quick(4), func(context.Context) error {
		calls++
		return driver.ErrBadConn
	})

	require.ErrorIs(t, err, driver.ErrBadConn)
	assert.Contains(t, err.Error(), "gave up after 4 attempts")
	assert.Equal(t, 4, calls)
}

func TestDo_PermanentErrorStopsAtOnce(t *testing.T) {
	authErr := &pgconn.PgError{Code: "28P01"}
	calls := 0
	err := Do(context.Background(), quick(5), counting(&calls, authErr))

	assert.Same(t, authErr, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := quick(5)
	b.Base = time.Minute

	calls := 0
	err := Do(ctx, b, func(context.Context) error {
		calls++
		cancel()
		return syscall.ECONNREFUSED
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroAttemptsStillCallsOnce(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Backoff{}, counting(&calls, syscall.ECONNRESET))

	assert.ErrorIs(t, err, syscall.ECONNRESET)
	assert.Equal(t, 1, calls)
}

/* ───── Backoff ───── */

func TestBackoff_Delay(t *testing.T) {
	b := Backoff{Base: 100 * time.Millisecond, Cap: time.Second, Factor: 2}

	tests := []struct {
		n    int
		want time.Duration
	}{
		{0, 0},
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{5, time.Second},
		{30, time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Delay(tt.n), "Delay(%d)", tt.n)
	}
}

func TestStartupBackoff(t *testing.T) {
	b := StartupBackoff()
	assert.Greater(t, b.Attempts, 1)
	assert.Less(t, b.Base, b.Cap)

	var total time.Duration
	for n := 1; n < b.Attempts; n++ {
		total += b.Delay(n)
	}
	assert.Less(t, total, time.Minute)
}

func TestWithJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		got := withJitter(base, 0.5)
		require.GreaterOrEqual(t, got, base)
		require.LessOrEqual(t, got, base+base/2)
	}
	assert.Equal(t, base, withJitter(base, 0))
	assert.LessOrEqual(t, withJitter(base, 7), 2*base)
}

/* ───── IsTransient ───── */

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"bad conn", driver.ErrBadConn, true},
		{"wrapped refused", fmt.Errorf("ping: %w", syscall.ECONNREFUSED), true},
		{"reset", syscall.ECONNRESET, true},
		{"pgx server starting", &pgconn.PgError{Code: "57P03"}, true},
		{"pq server starting", &pq.Error{Code: "57P03"}, true},
		{"bad password", &pgconn.PgError{Code: "28P01"}, false},
		{"unknown database", &pq.Error{Code: "3D000"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}
