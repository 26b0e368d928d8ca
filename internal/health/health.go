package health

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

type HealthChecker struct {
	db *pgxpool.Pool
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(db *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	dbHealth := h.checkDatabase(ctx)

	status := StatusHealthy
	if dbHealth.Status != StatusHealthy {
		status = StatusUnhealthy
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
	}
}

func (h *HealthChecker) checkDatabase(ctx context.Context) DatabaseHealth {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{
			Status:       StatusUnhealthy,
			ResponseTime: responseTime,
		}
	}

	return DatabaseHealth{
		Status:       StatusHealthy,
		ResponseTime: responseTime,
	}
}
