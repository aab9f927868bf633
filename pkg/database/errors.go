package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes surfaced to repositories
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
)

// ConstraintViolation reports the violated constraint when err is a
// PostgreSQL error carrying the given SQLSTATE code
func ConstraintViolation(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return "", false
	}
	return pgErr.ConstraintName, true
}

func IsUniqueViolation(err error) bool {
	_, ok := ConstraintViolation(err, CodeUniqueViolation)
	return ok
}

func IsForeignKeyViolation(err error) bool {
	_, ok := ConstraintViolation(err, CodeForeignKeyViolation)
	return ok
}
