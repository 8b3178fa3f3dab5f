package models

import (
	"advice-service/internal/pkg/constvars"
	"time"
)

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	ProfileID string    `json:"user_profile_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsCollegeStudent() bool {
	return s.Role == constvars.RoleCollegeStudent
}
