package repositories

import (
	"context"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.Role == "" {
		u.Role = models.RoleAgent // Default role
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO users(name, email, password_hash, role, location, is_active)
         VALUES($1, $2, $3, $4, NULLIF($5, ''), $6)
         RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Location, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt)
	return translate(err)
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, COALESCE(location, ''), is_active, created_at
         FROM users WHERE id=$1`, id)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Location, &user.IsActive, &user.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, COALESCE(location, ''), is_active, created_at
         FROM users WHERE email=$1`, email)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Location, &user.IsActive, &user.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ListByRole returns all users with the given role, newest first.
// Inactive users are included; callers surface the is_active flag.
func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]*models.User, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, email, role, COALESCE(location, ''), is_active, created_at
         FROM users WHERE role=$1 ORDER BY created_at DESC`, role)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role,
			&user.Location, &user.IsActive, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, nil
}

// Update persists all mutable user fields
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE users SET name=$1, email=$2, password_hash=$3, role=$4, location=NULLIF($5, ''), is_active=$6
         WHERE id=$7`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Location, u.IsActive, u.ID)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetActive toggles the soft-delete flag
func (r *UserRepository) SetActive(ctx context.Context, id int, active bool) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE users SET is_active=$1 WHERE id=$2`, active, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
