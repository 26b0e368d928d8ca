package repositories

import (
	"context"

	"freight-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LoginLogRepository struct {
	DB *pgxpool.Pool
}

func NewLoginLogRepository(db *pgxpool.Pool) *LoginLogRepository {
	return &LoginLogRepository{DB: db}
}

func (r *LoginLogRepository) Create(ctx context.Context, userID int, ipAddress, userAgent string) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO login_logs(user_id, ip_address, user_agent) VALUES($1, $2, $3)`,
		userID, ipAddress, userAgent)
	return translate(err)
}

// ListRecent returns the most recent login logs with user details joined in
func (r *LoginLogRepository) ListRecent(ctx context.Context, limit int) ([]*models.LoginLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.DB.Query(ctx,
		`SELECT l.id, l.user_id, u.name, u.email, l.ip_address, l.user_agent, l.created_at
         FROM login_logs l
         JOIN users u ON u.id = l.user_id
         ORDER BY l.created_at DESC
         LIMIT $1`, limit)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var logs []*models.LoginLog
	for rows.Next() {
		var l models.LoginLog
		err := rows.Scan(&l.ID, &l.UserID, &l.UserName, &l.UserEmail, &l.IPAddress, &l.UserAgent, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, nil
}
