package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/auth"
	"freight-backend/internal/config"
	"freight-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserStore struct {
	users map[int]*models.User
}

func (s *stubUserStore) Create(ctx context.Context, u *models.User) error { return nil }

func (s *stubUserStore) Get(ctx context.Context, id int) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubUserStore) ListByRole(ctx context.Context, role string) ([]*models.User, error) {
	return nil, nil
}

func (s *stubUserStore) Update(ctx context.Context, u *models.User) error { return nil }

func (s *stubUserStore) SetActive(ctx context.Context, id int, active bool) error { return nil }

func newTestMiddleware(users ...*models.User) (*AuthMiddleware, *auth.JWTManager) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationDays = 7
	cfg.JWT.Issuer = "freight-backend"
	jwtManager := auth.NewJWTManager(cfg)

	store := &stubUserStore{users: make(map[int]*models.User)}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return NewAuthMiddleware(jwtManager, store), jwtManager
}

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@example.com", Role: models.RoleAgent, IsActive: true}
	m, jwtManager := newTestMiddleware(user)

	token, err := jwtManager.GenerateToken(user)
	require.NoError(t, err)

	var hit bool
	var gotID int
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		gotID, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)
	assert.Equal(t, 1, gotID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _ := newTestMiddleware()

	var hit bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	m.Authenticate(okHandler(&hit)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access token required")
	assert.False(t, hit)
}

func TestAuthenticate_BadFormat(t *testing.T) {
	m, _ := newTestMiddleware()

	var hit bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Token abc")
	m.Authenticate(okHandler(&hit)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid authorization format")
	assert.False(t, hit)
}

func TestAuthenticate_BadToken(t *testing.T) {
	m, _ := newTestMiddleware()

	var hit bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	m.Authenticate(okHandler(&hit)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)
}

func TestAuthenticate_DeactivatedUser(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@example.com", Role: models.RoleAgent, IsActive: false}
	m, jwtManager := newTestMiddleware(user)

	token, err := jwtManager.GenerateToken(user)
	require.NoError(t, err)

	var hit bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	m.Authenticate(okHandler(&hit)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account deactivated")
	assert.False(t, hit)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	user := &models.User{ID: 7, Email: "gone@example.com", Role: models.RoleAgent, IsActive: true}
	// Token is valid but the record no longer exists
	m, jwtManager := newTestMiddleware()

	token, err := jwtManager.GenerateToken(user)
	require.NoError(t, err)

	var hit bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	m.Authenticate(okHandler(&hit)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)
}

func TestRequireAdmin(t *testing.T) {
	admin := &models.User{ID: 1, Email: "admin@gmail.com", Role: models.RoleAdmin, IsActive: true}
	agent := &models.User{ID: 2, Email: "agent@example.com", Role: models.RoleAgent, IsActive: true}
	m, jwtManager := newTestMiddleware(admin, agent)

	adminToken, err := jwtManager.GenerateToken(admin)
	require.NoError(t, err)
	agentToken, err := jwtManager.GenerateToken(agent)
	require.NoError(t, err)

	var hit bool
	handler := m.RequireAdmin(okHandler(&hit))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/agents", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)

	hit = false
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/auth/agents", nil)
	req.Header.Set("Authorization", "Bearer "+agentToken)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Insufficient permissions")
	assert.False(t, hit)
}

func TestRequireAgent_AdminAllowed(t *testing.T) {
	admin := &models.User{ID: 1, Email: "admin@gmail.com", Role: models.RoleAdmin, IsActive: true}
	m, jwtManager := newTestMiddleware(admin)

	token, err := jwtManager.GenerateToken(admin)
	require.NoError(t, err)

	var hit bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	m.RequireAgent(okHandler(&hit)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)
}

func TestAuthenticate_RoleReadFromStore(t *testing.T) {
	// Role changes apply on the next request even with an old token
	user := &models.User{ID: 1, Email: "a@example.com", Role: models.RoleAgent, IsActive: true}
	m, jwtManager := newTestMiddleware(user)

	token, err := jwtManager.GenerateToken(user)
	require.NoError(t, err)

	user.Role = models.RoleAdmin

	var hit bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/agents", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	m.RequireAdmin(okHandler(&hit)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)
}
