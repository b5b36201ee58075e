package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeNumericOutOfRange   = "22003"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
)

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return hasPgCode(err, pgCodeUniqueViolation)
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	return hasPgCode(err, pgCodeForeignKeyViolation)
}

// IsCheckViolationError checks if the error comes from a CHECK constraint
func IsCheckViolationError(err error) bool {
	return hasPgCode(err, pgCodeCheckViolation)
}

// IsNumericOutOfRangeError checks if a value did not fit its column type
func IsNumericOutOfRangeError(err error) bool {
	return hasPgCode(err, pgCodeNumericOutOfRange)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
