package errors

// Postgres helpers for mapping pgx errors to project ErrorCodes

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes we care about
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrNotNullViolation    = "23502"
	pgErrCheckViolation      = "23514"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrCannotConnectNow     = "57P03"
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports whether err is a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// IsCheckViolation reports whether err is a check constraint violation
func IsCheckViolation(err error) bool { return IsSQLState(err, pgErrCheckViolation) }

// IsNoRows reports whether err is pgx.ErrNoRows
func IsNoRows(err error) bool { return stderrs.Is(Root(err), pgx.ErrNoRows) }

// FromPg maps a raw pgx error into a project *Error.
// Unknown database failures become ErrorCodeDB
func FromPg(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case IsNoRows(err):
		return Wrap(err, ErrorCodeNotFound, msg)
	case IsDuplicateKey(err):
		return Wrap(err, ErrorCodeDuplicateKey, msg)
	case IsCheckViolation(err), IsSQLState(err, pgErrNotNullViolation), IsSQLState(err, pgErrForeignKeyViolation):
		return Wrap(err, ErrorCodeInvalidArgument, msg)
	case stderrs.Is(err, context.Canceled), stderrs.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrorCodeUnavailable, msg)
	default:
		return Wrap(err, ErrorCodeDB, msg)
	}
}

// IsRetryable reports whether a pg failure is worth retrying at the
// infrastructure level; application code does not retry
func IsRetryable(err error) bool {
	return IsSQLState(err, pgErrSerializationFailure) ||
		IsSQLState(err, pgErrDeadlockDetected) ||
		IsSQLState(err, pgErrCannotConnectNow)
}
