package handlers

import (
	"context"
	"net/http"
	"strconv"

	"freight-backend/internal/models"
	"freight-backend/pkg/utils"
)

type LoginLogLister interface {
	ListRecent(ctx context.Context, limit int) ([]*models.LoginLog, error)
}

type LoginLogHandler struct {
	Repo LoginLogLister
}

func NewLoginLogHandler(repo LoginLogLister) *LoginLogHandler {
	return &LoginLogHandler{Repo: repo}
}

// List returns the most recent login events, newest first. Admin only.
func (h *LoginLogHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			limit = n
		}
	}

	logs, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if logs == nil {
		logs = []*models.LoginLog{}
	}
	utils.JSON(w, http.StatusOK, logs)
}
