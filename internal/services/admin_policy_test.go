package services

import (
	"testing"

	"freight-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleForEmail(t *testing.T) {
	assert.Equal(t, models.RoleAdmin, RoleForEmail(ReservedAdminEmail))
	assert.Equal(t, models.RoleAgent, RoleForEmail("anyone@example.com"))
}

func TestShouldPromoteToAdmin(t *testing.T) {
	assert.True(t, ShouldPromoteToAdmin(&models.User{Email: ReservedAdminEmail, Role: models.RoleAgent}))
	assert.False(t, ShouldPromoteToAdmin(&models.User{Email: ReservedAdminEmail, Role: models.RoleAdmin}))
	assert.False(t, ShouldPromoteToAdmin(&models.User{Email: "agent@example.com", Role: models.RoleAgent}))
}
