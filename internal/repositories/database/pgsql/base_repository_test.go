package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgCodeUniqueViolation}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("failed to save invoice: %w", unique)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgCodeForeignKeyViolation}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: pgCodeForeignKeyViolation}

	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("failed to insert payment: %w", fk)))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: pgCodeUniqueViolation}))
	assert.False(t, isForeignKeyViolation(nil))
}
