package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/metrics"
	"freight-backend/internal/models"
	"freight-backend/internal/services"
	"freight-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// LoginLogStore is implemented by repositories.LoginLogRepository
type LoginLogStore interface {
	Create(ctx context.Context, userID int, ipAddress, userAgent string) error
	ListRecent(ctx context.Context, limit int) ([]*models.LoginLog, error)
}

type AuthHandler struct {
	Service      *services.UserService
	LoginLogRepo LoginLogStore
}

func NewAuthHandler(s *services.UserService, loginLogRepo LoginLogStore) *AuthHandler {
	return &AuthHandler{
		Service:      s,
		LoginLogRepo: loginLogRepo,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	authResp, err := h.Service.Register(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, authResp)
}

// Login handles user authentication
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	authResp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		utils.Error(w, err)
		return
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	// Log the successful login, best effort
	if h.LoginLogRepo != nil {
		if err := h.LoginLogRepo.Create(r.Context(), authResp.User.ID, getIPAddress(r), r.UserAgent()); err != nil {
			log.Printf("[Auth] failed to record login log: %v", err)
		}
	}

	utils.JSON(w, http.StatusOK, authResp)
}

// Profile returns the authenticated user's record
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		utils.Message(w, http.StatusUnauthorized, "No token provided")
		return
	}

	user, err := h.Service.Verify(r.Context(), token)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]*models.User{"user": user})
}

// CheckAdmin seeds the reserved administrator account if missing
func (h *AuthHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	admin, created, err := h.Service.EnsureAdminSeed(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	resp := map[string]interface{}{
		"admin": map[string]string{"email": admin.Email, "role": admin.Role},
	}
	if created {
		resp["message"] = "Admin user created"
		resp["defaultPassword"] = "admin123"
	} else {
		resp["message"] = "Admin user exists"
	}
	utils.JSON(w, http.StatusOK, resp)
}

// CreateAgent handles admin-initiated agent creation
func (h *AuthHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	agent, err := h.Service.CreateAgent(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Agent created successfully",
		"agent":   agent,
	})
}

// ListAgents returns all agent records, inactive included but flagged
func (h *AuthHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Service.ListAgents(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	if agents == nil {
		agents = []*models.User{}
	}
	utils.JSON(w, http.StatusOK, agents)
}

// UpdateAgent applies an allow-listed patch to an agent record
func (h *AuthHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Agent not found"))
		return
	}

	var req models.UpdateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	agent, err := h.Service.UpdateAgent(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, agent)
}

// DeactivateAgent soft-deletes an agent record
func (h *AuthHandler) DeactivateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Agent not found"))
		return
	}

	agent, err := h.Service.DeactivateAgent(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Agent deactivated successfully",
		"agent":   agent,
	})
}

// getIPAddress extracts the real IP address from the request
func getIPAddress(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return r.RemoteAddr
}
