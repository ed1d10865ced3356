package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by identity tokens.
type Claims struct {
	UserID uuid.UUID
	Role   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and resolving identity
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed identity token bound to the user id and role.
	Issue(userID uuid.UUID, role string) (string, error)

	// Resolve validates a token string and extracts the identity it was
	// issued for.
	Resolve(tokenString string) (*Claims, error)
}
