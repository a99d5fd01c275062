// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ncnews/internal/domain/entity"
	"ncnews/internal/observability/metrics"
	"ncnews/internal/observability/tracing"
)

// DB is the query surface the repositories need. *sqlx.DB and the
// circuit-breaker wrapper both satisfy it.
type DB interface {
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// instrument starts a client span for op and returns a function that ends
// it and records the query duration. Not-found results are not span errors.
func instrument(ctx context.Context, op string) (context.Context, func(err *error)) {
	start := time.Now()
	ctx, span := tracing.GetTracer().Start(ctx, "postgres."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", op),
		))

	return ctx, func(errp *error) {
		err := *errp
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		metrics.RecordDBQuery(op, time.Since(start), err)
	}
}

// selectAll scans every row into a new T. It never returns a nil slice.
func selectAll[T any](ctx context.Context, db DB, query string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]*T, 0)
	for rows.Next() {
		var v T
		if err := rows.StructScan(&v); err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// getOne scans the first row into a T, or returns sql.ErrNoRows.
func getOne[T any](ctx context.Context, db DB, query string, args ...interface{}) (*T, error) {
	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}
	var v T
	if err := rows.StructScan(&v); err != nil {
		return nil, fmt.Errorf("Scan: %w", err)
	}
	return &v, nil
}

// scalar reads a single-column, single-row result such as COUNT or EXISTS.
func scalar[T any](ctx context.Context, db DB, query string, args ...interface{}) (T, error) {
	var v T
	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return v, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return v, err
		}
		return v, sql.ErrNoRows
	}
	if err := rows.Scan(&v); err != nil {
		return v, fmt.Errorf("Scan: %w", err)
	}
	return v, nil
}
