// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Signing key for session tokens.
	sessionTTL time.Duration // Zero disables the expiry claim.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance;
// the signing key is never read from process-wide environment state.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{secret: cfg.SecretKey.JWT}
	if cfg.Auth != nil {
		svc.sessionTTL = cfg.Auth.SessionTokenTTL
	}

	return svc, nil
}

// IssueSessionToken signs a session token carrying the seller's identity.
// The payload is a pure function of the seller record, so signup and login
// produce tokens with identical identity fields.
func (s *jwtService) IssueSessionToken(seller *entity.Seller) (string, error) {
	claims := &service.SessionClaims{
		UserID:    seller.ID,
		Username:  seller.Name,
		UserImage: seller.Image,
		Role:      entity.RoleSeller,
	}
	if s.sessionTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.sessionTTL))
		claims.IssuedAt = jwt.NewNumericDate(time.Now())
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken checks the signature of a session token and returns its claims.
// Validity is pure signature verification; when no TTL is configured the
// token carries no expiry claim.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}
