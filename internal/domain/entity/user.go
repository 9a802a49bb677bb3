// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account. The password hash is an opaque encoded
// string owned by the auth boundary; it is never serialized in a
// response and never logged.
type User struct {
	ID           int64     `json:"id"`       // Monotonically allocated user identifier.
	Username     string    `json:"username"` // Login name, unique across users.
	Email        string    `json:"email"`    // Contact email, unique across users.
	PasswordHash string    `json:"-"`        // Encoded argon2id hash; excluded from every representation.
	CreatedAt    time.Time `json:"created_at"`
}
