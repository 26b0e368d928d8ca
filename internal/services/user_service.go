package services

import (
	"context"
	"errors"
	"strings"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/auth"
	"freight-backend/internal/cache"
	"freight-backend/internal/models"
)

// UserStore is the credential store the service runs against. Implemented
// by repositories.UserRepository.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]*models.User, error)
	Update(ctx context.Context, u *models.User) error
	SetActive(ctx context.Context, id int, active bool) error
}

type UserService struct {
	Store      UserStore
	JWTManager *auth.JWTManager
}

func NewUserService(store UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Store:      store,
		JWTManager: jwtManager,
	}
}

// NormalizeEmail is applied to every email before lookup or storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a credential record and issues a token
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.E(apperrors.ErrValidation, "Email and password are required")
	}

	email := NormalizeEmail(req.Email)
	if existing, _ := s.Store.GetByEmail(ctx, email); existing != nil {
		return nil, apperrors.E(apperrors.ErrConflict, "User already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         RoleForEmail(email),
		IsActive:     true,
	}

	if err := s.Store.Create(ctx, user); err != nil {
		// The store enforces email uniqueness; a concurrent duplicate
		// surfaces here as Conflict rather than a crash
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.E(apperrors.ErrConflict, "User already exists")
		}
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates a user and returns a JWT token. The error message
// never reveals whether the email exists.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.E(apperrors.ErrUnauthorized, "Invalid credentials")
	}

	user, err := s.Store.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		return nil, apperrors.E(apperrors.ErrUnauthorized, "Invalid credentials")
	}

	// Credential cache in front of bcrypt; falls through on any miss
	if _, ok := cache.GetCachedAuth(ctx, user.Email, req.Password, user.PasswordHash); !ok {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return nil, apperrors.E(apperrors.ErrUnauthorized, "Invalid credentials")
		}
		cache.CacheAuth(ctx, user.Email, req.Password, user.PasswordHash, user.ID)
	}

	if ShouldPromoteToAdmin(user) {
		user.Role = models.RoleAdmin
		if err := s.Store.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// Verify resolves a bearer token to the current credential record
func (s *UserService) Verify(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.JWTManager.ValidateToken(token)
	if err != nil {
		return nil, apperrors.E(apperrors.ErrUnauthorized, "Invalid or expired token")
	}

	user, err := s.Store.Get(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.E(apperrors.ErrUnauthorized, "Invalid token")
	}
	return user, nil
}

// EnsureAdminSeed creates the reserved administrator account if it does not
// exist yet. Idempotent. Returns the record and whether it was created.
func (s *UserService) EnsureAdminSeed(ctx context.Context) (*models.User, bool, error) {
	if existing, err := s.Store.GetByEmail(ctx, ReservedAdminEmail); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, err
	}

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return nil, false, err
	}

	admin := &models.User{
		Name:         "System Administrator",
		Email:        ReservedAdminEmail,
		PasswordHash: hashedPassword,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := s.Store.Create(ctx, admin); err != nil {
		return nil, false, err
	}
	return admin, true, nil
}

// CreateAgent creates an agent account on behalf of an admin
func (s *UserService) CreateAgent(ctx context.Context, req *models.CreateAgentRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Location == "" {
		return nil, apperrors.E(apperrors.ErrValidation, "Name, email, password, and location are required")
	}
	if !models.ValidLocation(req.Location) {
		return nil, apperrors.Ef(apperrors.ErrValidation, "Unknown location: %s", req.Location)
	}

	email := NormalizeEmail(req.Email)
	if existing, _ := s.Store.GetByEmail(ctx, email); existing != nil {
		return nil, apperrors.E(apperrors.ErrConflict, "User with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	agent := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         models.RoleAgent,
		Location:     req.Location,
		IsActive:     true,
	}
	if err := s.Store.Create(ctx, agent); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.E(apperrors.ErrConflict, "User with this email already exists")
		}
		return nil, err
	}
	return agent, nil
}

// ListAgents returns every agent record, inactive ones included but
// flagged, matching the admin console's expectations.
func (s *UserService) ListAgents(ctx context.Context) ([]*models.User, error) {
	return s.Store.ListByRole(ctx, models.RoleAgent)
}

// UpdateAgent applies an allow-listed patch to an agent record.
// A new password is re-hashed before storage.
func (s *UserService) UpdateAgent(ctx context.Context, id int, req *models.UpdateAgentRequest) (*models.User, error) {
	user, err := s.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.E(apperrors.ErrNotFound, "Agent not found")
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		email := NormalizeEmail(*req.Email)
		if email == "" {
			return nil, apperrors.E(apperrors.ErrValidation, "Email cannot be empty")
		}
		user.Email = email
	}
	if req.Location != nil {
		if !models.ValidLocation(*req.Location) {
			return nil, apperrors.Ef(apperrors.ErrValidation, "Unknown location: %s", *req.Location)
		}
		user.Location = *req.Location
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.Store.Update(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.E(apperrors.ErrConflict, "User with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

// DeactivateAgent soft-deletes an agent. Idempotent.
func (s *UserService) DeactivateAgent(ctx context.Context, id int) (*models.User, error) {
	if err := s.Store.SetActive(ctx, id, false); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.E(apperrors.ErrNotFound, "Agent not found")
		}
		return nil, err
	}
	return s.Store.Get(ctx, id)
}
