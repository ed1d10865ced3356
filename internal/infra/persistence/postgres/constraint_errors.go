package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// PostgreSQL error classes the repositories map to domain errors. The raw
// *pgconn.PgError is inspected directly because it carries the violated
// constraint's name, which the repositories need to tell the email and
// phone unique indexes (and the category and amenity foreign keys) apart.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// violatesConstraint reports whether err was raised by the named constraint.
func violatesConstraint(err error, name string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && strings.EqualFold(pgErr.ConstraintName, name)
}
