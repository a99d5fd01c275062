// Package pgerr reads PostgreSQL fault codes from errors raised by either
// supported driver (pgx or lib/pq).
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE codes the API distinguishes.
const (
	NumericValueOutOfRange    = "22003"
	InvalidTextRepresentation = "22P02"
	NotNullViolation          = "23502"
	ForeignKeyViolation       = "23503"
	UniqueViolation           = "23505"
	SyntaxError               = "42601"
	UndefinedColumn           = "42703"
	CannotConnectNow          = "57P03"
)

// Code returns the SQLSTATE carried by err, or "" if err did not come from
// the database server.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Constraint returns the name of the violated constraint, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// Is reports whether err carries the given SQLSTATE.
func Is(err error, code string) bool {
	return err != nil && Code(err) == code
}

// IsServerError reports whether err was raised by the database server.
// Such errors mean the server is reachable, whatever the statement did wrong.
func IsServerError(err error) bool {
	return Code(err) != ""
}
