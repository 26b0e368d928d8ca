package auth

import (
	"testing"
	"time"

	"freight-backend/internal/config"
	"freight-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationDays = 7
	cfg.JWT.Issuer = "freight-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig())
	user := &models.User{ID: 42, Email: "agent@example.com", Role: models.RoleAgent}

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "agent@example.com", claims.Email)
	assert.Equal(t, "freight-backend", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())
	user := &models.User{ID: 1, Email: "a@example.com"}

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "different-secret"
	other := NewJWTManager(otherCfg)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	manager := NewJWTManager(cfg)

	claims := &Claims{
		UserID: 1,
		Email:  "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    cfg.JWT.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	_, err = manager.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	cfg := testConfig()
	manager := NewJWTManager(cfg)

	// alg=none tokens must never validate
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	manager := NewJWTManager(testConfig())
	_, err := manager.ValidateToken("not-a-token")
	assert.Error(t, err)
}
