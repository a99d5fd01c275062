package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sony/gobreaker"

	"ncnews/internal/infra/db/pgerr"
)

// DB wraps a *sqlx.DB with circuit breaker protection. It satisfies the
// query interface the repositories are written against.
type DB struct {
	cb *CircuitBreaker
	db *sqlx.DB
}

// DBConfig is the breaker used in front of Postgres: it trips once at least
// five calls in a one minute window have all failed, then probes again after
// thirty seconds.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3, // probes while half-open
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
		IsSuccessful:     isHealthyOutcome,
	}
}

// isHealthyOutcome treats errors that prove the server answered (constraint
// violations, bad literals, no rows) and caller cancellations as successes.
func isHealthyOutcome(err error) bool {
	return err == nil ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, context.Canceled) ||
		pgerr.IsServerError(err)
}

// NewDB creates a database circuit breaker with DBConfig.
func NewDB(db *sqlx.DB) *DB {
	return NewDBWithConfig(db, DBConfig())
}

// NewDBWithConfig creates a database circuit breaker with custom configuration.
// A nil IsSuccessful in cfg is replaced with the default classification.
func NewDBWithConfig(db *sqlx.DB, cfg Config) *DB {
	if cfg.IsSuccessful == nil {
		cfg.IsSuccessful = isHealthyOutcome
	}
	return &DB{
		cb: New(cfg),
		db: db,
	}
}

// QueryxContext executes a query with circuit breaker protection.
// If the circuit is open, it returns gobreaker.ErrOpenState without hitting the database.
func (d *DB) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return run(d.cb, func() (*sqlx.Rows, error) {
		return d.db.QueryxContext(ctx, query, args...)
	})
}

// ExecContext executes a statement with circuit breaker protection.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return run(d.cb, func() (sql.Result, error) {
		return d.db.ExecContext(ctx, query, args...)
	})
}

// PingContext checks connectivity through the breaker, so readiness probes
// report an open circuit as not ready.
func (d *DB) PingContext(ctx context.Context) error {
	_, err := d.cb.Execute(func() (interface{}, error) {
		return nil, d.db.PingContext(ctx)
	})
	return err
}

// Stats returns the connection pool statistics.
func (d *DB) Stats() sql.DBStats {
	return d.db.Stats()
}

// State returns the current state of the circuit breaker.
func (d *DB) State() gobreaker.State {
	return d.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (d *DB) IsOpen() bool {
	return d.cb.IsOpen()
}

// Unwrap returns the underlying connection pool.
func (d *DB) Unwrap() *sqlx.DB {
	return d.db
}
