package middleware

import (
	"context"
	"net/http"
	"strings"

	"freight-backend/internal/auth"
	"freight-backend/internal/models"
	"freight-backend/internal/services"
	"freight-backend/pkg/utils"
)

type contextKey string

const UserIDKey contextKey = "user_id"
const EmailKey contextKey = "email"
const RoleKey contextKey = "role"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	users      services.UserStore
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, users services.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		users:      users,
	}
}

// authenticate resolves the bearer token to the current user record. Role
// and active status come from the database, not the token, so permission
// changes apply immediately.
func (m *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		utils.Message(w, http.StatusUnauthorized, "Access token required")
		return nil, false
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.Message(w, http.StatusUnauthorized, "Invalid authorization format")
		return nil, false
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		utils.Message(w, http.StatusUnauthorized, "Invalid or expired token")
		return nil, false
	}

	user, err := m.users.Get(r.Context(), claims.UserID)
	if err != nil {
		utils.Message(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}

	if !user.IsActive {
		utils.Message(w, http.StatusForbidden, "Account deactivated. Please contact administrator.")
		return nil, false
	}

	return user, true
}

func withUser(r *http.Request, user *models.User) *http.Request {
	ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
	ctx = context.WithValue(ctx, EmailKey, user.Email)
	ctx = context.WithValue(ctx, RoleKey, user.Role)
	return r.WithContext(ctx)
}

// Authenticate is a middleware that validates JWT tokens
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, withUser(r, user))
	})
}

// RequireRole ensures the user has one of the allowed roles
func (m *AuthMiddleware) RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := m.authenticate(w, r)
			if !ok {
				return
			}

			hasRole := false
			for _, role := range allowedRoles {
				if user.Role == role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				utils.Message(w, http.StatusForbidden, "Forbidden: Insufficient permissions")
				return
			}

			next.ServeHTTP(w, withUser(r, user))
		})
	}
}

// RequireAdmin ensures the user has admin role
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireRole(models.RoleAdmin)(next)
}

// RequireAgent ensures the user is an agent or an admin
func (m *AuthMiddleware) RequireAgent(next http.Handler) http.Handler {
	return m.RequireRole(models.RoleAgent, models.RoleAdmin)(next)
}

// GetUserIDFromContext extracts user ID from request context
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetEmailFromContext extracts email from request context
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// GetRoleFromContext extracts role from request context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
