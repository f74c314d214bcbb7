package domain

import "time"

// AdminUser represents a dashboard administrator.
//
// The password hash is scrypt-derived with a per-user salt, stored as
// "hexhash.hexsalt". An initial admin account is seeded at startup if
// no users exist.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose this in API responses
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminUserParams contains parameters for creating an admin user.
type AdminUserParams struct {
	Username     string
	PasswordHash string
	Name         string
	Role         string
}

// Session represents an authenticated admin session.
//
// Sessions are stored with a SHA-256 hash of the token; the raw token
// is only given to the client once, at login.
type Session struct {
	TokenHash string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// LoginResult contains the result of a successful login.
type LoginResult struct {
	User  *AdminUser
	Token string // Raw session token (not hashed) - only returned once
}
