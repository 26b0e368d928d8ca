package repositories

import (
	"errors"

	"freight-backend/internal/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE for a unique constraint violation
const uniqueViolation = "23505"

// translate maps pgx errors onto the service error kinds. A unique
// constraint violation becomes Conflict so duplicate inserts surface as
// 409, never a crash.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.ErrConflict
	}
	return err
}
