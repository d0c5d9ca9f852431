// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and submit vehicle price reports.
type User struct {
	ID        uuid.UUID // Store-assigned identifier, immutable after creation.
	Email     string    // Login identifier, unique across all users, case-sensitive as stored.
	Password  string    // Stored credential in "salt.hash" form, never plaintext.
	IsAdmin   bool      // Grants access to the report approval endpoint.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
