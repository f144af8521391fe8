package model

import "time"

// AccountRole classifies an account's privilege level.
type AccountRole string

const (
	// RoleAdmin can access the back-office and all write APIs.
	RoleAdmin AccountRole = "admin"
	// RoleSubscriber is a registered reader with no back-office access.
	RoleSubscriber AccountRole = "subscriber"
)

// Account is a login-capable user of the back-office.
type Account struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"` // Argon2id encoded hash, never serialized
	Role         AccountRole `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
	LastLoginAt  time.Time   `json:"last_login_at,omitempty"`
}

// IsAdmin reports whether the account has the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
