package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// SessionClaims is the payload carried by a session token. Signup and login
// encode the same fields for the same seller, so the token is an idempotent
// identity assertion.
type SessionClaims struct {
	UserID    uuid.UUID   `json:"userId"`
	Username  string      `json:"username"`
	UserImage string      `json:"userImage"`
	Role      entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases. The signing
// secret is injected at construction, never read from the environment at call time.
type TokenService interface {
	// IssueSessionToken signs a token asserting the seller's identity and role.
	IssueSessionToken(seller *entity.Seller) (string, error)

	// ValidateToken checks a token's signature and returns its claims.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
