package service

import "github.com/google/uuid"

// TokenService issues and validates the session tokens that gate account
// routes. This is convenience gating for the mock identity layer, not a
// security boundary.
type TokenService interface {
	// GenerateToken creates a signed session token for the user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the token and returns the user id it was issued for.
	ValidateToken(token string) (uuid.UUID, error)
}
