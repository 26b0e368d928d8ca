package repositories

import (
	"errors"
	"testing"

	"freight-backend/internal/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))

	assert.True(t, errors.Is(translate(pgx.ErrNoRows), apperrors.ErrNotFound))

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	assert.True(t, errors.Is(translate(dup), apperrors.ErrConflict))

	other := &pgconn.PgError{Code: "23503"}
	translated := translate(other)
	assert.False(t, errors.Is(translated, apperrors.ErrConflict))
	assert.False(t, errors.Is(translated, apperrors.ErrNotFound))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, translate(plain))
}
