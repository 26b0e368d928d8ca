package handlers

import (
	"net/http"

	"freight-backend/internal/health"
	"freight-backend/internal/timeutil"
	"freight-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.HealthChecker
	Env     string
}

func NewHealthHandler(checker *health.HealthChecker, env string) *HealthHandler {
	return &HealthHandler{Checker: checker, Env: env}
}

// Liveness reports that the process is up. It never touches the database.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Server is running",
		"timestamp":   timeutil.Now().Format(timeutil.DisplayLayout),
		"environment": h.Env,
	})
}

// Readiness pings the database and returns 503 when it is unreachable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.Check(r.Context())
	code := http.StatusOK
	if status.Status != health.StatusHealthy {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, status)
}
