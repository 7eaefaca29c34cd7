package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown to the user.
	Name string `json:"name,omitempty"`

	// Password carries the plaintext password on register/login requests
	// only. It is never persisted; the server stores [User.PasswordHash].
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session is the client-side record of an authenticated user, persisted in
// the local cache under the "offlineUser" key so the client can resume
// without logging in again.
type Session struct {
	// UserID is the server-assigned user identifier.
	UserID int64 `json:"userId"`

	// Login is the login the session was established for.
	Login string `json:"login"`

	// Token is the bearer token issued at login.
	Token string `json:"token"`

	// At is the timestamp when the session was established.
	At time.Time `json:"at"`
}
