package services

import "freight-backend/internal/models"

// ReservedAdminEmail is the bootstrap administrator address. A record with
// this email is always normalized to role admin: at registration, at seed
// time, and on login if the stored role drifted to agent.
// TODO: make the reserved address configurable and drop the login-time
// promotion once all environments are seeded through /check-admin.
const ReservedAdminEmail = "admin@gmail.com"

// defaultAdminPassword is only used by the idempotent admin seed
const defaultAdminPassword = "admin123"

// RoleForEmail returns the role a fresh registration should get
func RoleForEmail(email string) string {
	if email == ReservedAdminEmail {
		return models.RoleAdmin
	}
	return models.RoleAgent
}

// ShouldPromoteToAdmin reports whether a login should promote the record to
// admin as a side effect. One-way: nothing ever demotes an admin.
func ShouldPromoteToAdmin(user *models.User) bool {
	return user.Email == ReservedAdminEmail && user.Role != models.RoleAdmin
}
