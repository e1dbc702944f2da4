package models

import (
	"time"
)

// Role names stored on User.Role
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a credential record. It lives in the in-memory store only.
type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:'user'"` // "admin" or "user"

	// MFASecret is either a fixed six-character code (static mode) or a
	// base32 TOTP seed (totp mode).
	MFASecret string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true if the user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
