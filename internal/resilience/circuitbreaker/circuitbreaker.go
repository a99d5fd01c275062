// Package circuitbreaker stops sending queries to a database that keeps
// failing, so requests fail fast with 500 instead of queueing on a dead
// pool. It is built on github.com/sony/gobreaker.
package circuitbreaker

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"ncnews/internal/observability/metrics"
)

// Config tunes a breaker.
type Config struct {
	Name string

	// MaxRequests is how many probes a half-open breaker lets through.
	MaxRequests uint32
	// Interval clears the closed-state counts; 0 never clears them.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration

	// The breaker opens once at least MinRequests calls were counted and
	// the failure ratio reaches FailureThreshold (0..1).
	MinRequests      uint32
	FailureThreshold float64

	// IsSuccessful decides which errors count as failures. Nil counts
	// every non-nil error.
	IsSuccessful func(err error) bool
}

// CircuitBreaker is a named gobreaker.CircuitBreaker that logs and
// publishes its state changes.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New builds a closed breaker from cfg.
func New(cfg Config) *CircuitBreaker {
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(stateLevel(gobreaker.StateClosed))

	return &CircuitBreaker{
		name: cfg.Name,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:          cfg.Name,
			MaxRequests:   cfg.MaxRequests,
			Interval:      cfg.Interval,
			Timeout:       cfg.Timeout,
			ReadyToTrip:   tripAt(cfg.MinRequests, cfg.FailureThreshold),
			OnStateChange: reportStateChange,
			IsSuccessful:  cfg.IsSuccessful,
		}),
	}
}

func tripAt(minRequests uint32, threshold float64) func(gobreaker.Counts) bool {
	return func(c gobreaker.Counts) bool {
		if c.Requests == 0 || c.Requests < minRequests {
			return false
		}
		return float64(c.TotalFailures)/float64(c.Requests) >= threshold
	}
}

func reportStateChange(name string, from, to gobreaker.State) {
	level := slog.LevelWarn
	if to == gobreaker.StateClosed {
		level = slog.LevelInfo
	}
	slog.Log(context.Background(), level, "circuit breaker state changed",
		slog.String("circuit", name),
		slog.String("from", from.String()),
		slog.String("to", to.String()))

	metrics.RecordBreakerState(name, to.String(), int(stateLevel(to)))
}

func stateLevel(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Execute runs fn unless the breaker is open, in which case it returns
// gobreaker.ErrOpenState (or ErrTooManyRequests while half-open).
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	return cb.breaker.Execute(fn)
}

// State reports the current state.
func (cb *CircuitBreaker) State() gobreaker.State { return cb.breaker.State() }

// Name is the name the breaker logs and reports metrics under.
func (cb *CircuitBreaker) Name() string { return cb.name }

// IsOpen reports whether calls are currently being rejected.
func (cb *CircuitBreaker) IsOpen() bool { return cb.breaker.State() == gobreaker.StateOpen }

// run executes fn through cb with a typed result.
func run[T any](cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	out, err := cb.Execute(func() (interface{}, error) {
		v, err := fn()
		return v, err
	})
	v, _ := out.(T)
	return v, err
}
