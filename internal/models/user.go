package models

import "time"

// Roles
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// Service branches an agent can be assigned to
var Locations = []string{"Hyderabad", "Chennai", "Bangalore", "Kerala", "Mumbai"}

// ValidLocation reports whether loc is one of the service branches
func ValidLocation(loc string) bool {
	for _, l := range Locations {
		if l == loc {
			return true
		}
	}
	return false
}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`               // admin or agent
	Location     string    `json:"location,omitempty"` // branch, expected for agents
	IsActive     bool      `json:"isActive"`           // false = deactivated (soft delete)
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CreateAgentRequest represents the request body for admin-created agents
type CreateAgentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}

// UpdateAgentRequest is the allow-list of fields mutable through the agent
// management flow. Pointers distinguish "not sent" from zero values.
type UpdateAgentRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Location *string `json:"location"`
	IsActive *bool   `json:"isActive"`
}
