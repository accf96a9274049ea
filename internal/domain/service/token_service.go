package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a new signed access token binding the user id as subject,
	// expiring the configured TTL after issuance.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks a token string and returns the subject user id on success.
	// Every failure mode (malformed envelope, bad signature, wrong algorithm,
	// expired, missing subject) collapses into ok=false; the reason is never
	// surfaced to the caller.
	Verify(token string) (userID uuid.UUID, ok bool)

	// AccessTokenTTL returns the configured lifetime of issued tokens.
	AccessTokenTTL() time.Duration
}
