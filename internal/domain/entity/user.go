// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single registered account.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // The user's display name.
	Email        string    // The user's email, unique across all accounts, used as the login identifier.
	PasswordHash string    // The bcrypt hash of the user's password. Never serialized outward.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
