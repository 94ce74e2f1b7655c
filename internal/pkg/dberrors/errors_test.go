package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "admins_username_key"})

	assert.True(t, IsDuplicateConstraintError(err, "admins_username_key"))
	assert.False(t, IsDuplicateConstraintError(err, "other"))
	assert.False(t, IsDuplicateConstraintError(errors.New("plain"), "admins_username_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: CodeForeignKeyViolation, ConstraintName: "courses_teacher_id_fkey"}

	assert.True(t, IsForeignKeyViolation(err, ""))
	assert.True(t, IsForeignKeyViolation(err, "courses_teacher_id_fkey"))
	assert.False(t, IsForeignKeyViolation(err, "x"))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: CodeUniqueViolation}, ""))
}

func TestIsNotNullViolation(t *testing.T) {
	assert.True(t, IsNotNullViolation(&pgconn.PgError{Code: CodeNotNullViolation}))
	assert.False(t, IsNotNullViolation(&pgconn.PgError{Code: CodeUniqueViolation}))
}
