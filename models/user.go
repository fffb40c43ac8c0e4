package models

import "time"

// Role is the authorization role attached to a user account.
type Role string

// Supported roles. Mutating content endpoints require RoleAdmin; RoleUser
// accounts may only read.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents an account entity used for authentication and authorization.
// The password hash is never serialized outward.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. It is used
	// only for authentication and is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role determines whether the user may mutate content.
	Role Role `json:"role"`

	// IsActive gates login: inactive accounts are rejected with valid
	// credentials.
	IsActive bool `json:"isActive"`

	// LastLogin is the timestamp of the most recent successful login, nil
	// for accounts that have never logged in.
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table associated with the User
// model.
func (u User) TableName() string {
	return "users"
}
