package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sony/gobreaker"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

func TestNewDB(t *testing.T) {
	db, _ := newMockDB(t)

	d := NewDB(db)

	if d.Unwrap() != db {
		t.Error("expected db to be set")
	}
	if d.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state to be Closed, got %s", d.State())
	}
}

func TestDB_QueryxContext_Success(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewDB(db)

	mock.ExpectQuery("SELECT (.+) FROM topics").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).AddRow("mitch", "The man, the Mitch, the legend"))

	rows, err := d.QueryxContext(context.Background(), "SELECT slug, description FROM topics")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		t.Fatal("expected at least one row")
	}
	var slug, description string
	if err := rows.Scan(&slug, &description); err != nil {
		t.Fatalf("failed to scan row: %v", err)
	}
	if slug != "mitch" {
		t.Errorf("expected slug=mitch, got %s", slug)
	}
}

func TestDB_ExecContext_Success(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewDB(db)

	mock.ExpectExec("DELETE FROM comments").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := d.ExecContext(context.Background(), "DELETE FROM comments WHERE comment_id = $1", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	n, _ := res.RowsAffected()
	if n != 1 {
		t.Errorf("expected 1 row affected, got %d", n)
	}
}

func TestDB_OpensAfterConsecutiveFailures(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := DBConfig()
	cfg.Timeout = time.Hour
	d := NewDBWithConfig(db, cfg)

	connErr := errors.New("connection refused")
	for i := 0; i < 5; i++ {
		mock.ExpectQuery("SELECT 1").WillReturnError(connErr)
		if _, err := d.QueryxContext(context.Background(), "SELECT 1"); !errors.Is(err, connErr) {
			t.Fatalf("attempt %d: expected connErr, got %v", i, err)
		}
	}

	if !d.IsOpen() {
		t.Fatalf("expected circuit to be open, got %s", d.State())
	}

	if _, err := d.ExecContext(context.Background(), "SELECT 1"); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDB_ServerErrorsDoNotTrip(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewDB(db)

	for i := 0; i < 10; i++ {
		mock.ExpectExec("INSERT INTO comments").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "comments_author_fkey"})
		_, _ = d.ExecContext(context.Background(), "INSERT INTO comments (author) VALUES ($1)", "nobody")
	}

	if d.State() != gobreaker.StateClosed {
		t.Errorf("expected constraint violations to keep the circuit closed, got %s", d.State())
	}
}

func TestIsHealthyOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"no rows", sql.ErrNoRows, true},
		{"canceled", context.Canceled, true},
		{"server error", &pgconn.PgError{Code: "22P02"}, true},
		{"connection error", errors.New("dial tcp: connection refused"), false},
		{"deadline", context.DeadlineExceeded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHealthyOutcome(tt.err); got != tt.want {
				t.Errorf("isHealthyOutcome(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
