package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           code,
		Message:        "constraint violation",
		ConstraintName: constraint,
	}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(pgError(pgUniqueViolation, "uq_users_email")))
	assert.False(t, isUniqueConstraintViolation(pgError(pgForeignKeyViolation, "venue_amenities")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(pgError(pgForeignKeyViolation, "fk_venues_category")))
	assert.False(t, isForeignKeyConstraintViolation(pgError(pgUniqueViolation, "uq_users_email")))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
}

func TestViolatesConstraint(t *testing.T) {
	phoneErr := pgError(pgUniqueViolation, "uq_users_phone")

	assert.True(t, violatesConstraint(phoneErr, "uq_users_phone"))
	assert.False(t, violatesConstraint(phoneErr, "uq_users_email"))

	// The driver error often arrives wrapped by the repository layer.
	wrapped := errors.Wrap(pgError(pgForeignKeyViolation, "venue_amenities"), "failed to create venue")
	assert.True(t, violatesConstraint(wrapped, "venue_amenities"))

	assert.False(t, violatesConstraint(errors.New("duplicate key value violates unique constraint \"uq_users_phone\""), "uq_users_phone"))
	assert.False(t, violatesConstraint(nil, "uq_users_phone"))
}
