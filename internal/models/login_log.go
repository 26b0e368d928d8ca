package models

import "time"

// LoginLog records each successful login for the admin console
type LoginLog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	UserEmail string    `json:"userEmail,omitempty"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}
