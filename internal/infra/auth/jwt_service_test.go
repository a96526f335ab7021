package auth

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{SessionTokenTTL: ttl},
	}
	cfg.SecretKey.JWT = "test_jwt_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndValidateSessionToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(0))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	seller := &entity.Seller{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "a@x.com",
		Image: "uploads/images/alice.png",
	}

	token, err := jwtService.IssueSessionToken(seller)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, seller.ID, claims.UserID)
	assert.Equal(t, seller.Name, claims.Username)
	assert.Equal(t, seller.Image, claims.UserImage)
	assert.Equal(t, entity.RoleSeller, claims.Role)

	// No TTL configured: the token carries no expiry claim.
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTService_TokenPayloadIsIdempotent(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(0))
	assert.NoError(t, err)

	seller := &entity.Seller{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "a@x.com",
	}

	// Issuing twice (signup then login) asserts the same identity.
	first, err := jwtService.IssueSessionToken(seller)
	assert.NoError(t, err)
	second, err := jwtService.IssueSessionToken(seller)
	assert.NoError(t, err)

	firstClaims, err := jwtService.ValidateToken(first)
	assert.NoError(t, err)
	secondClaims, err := jwtService.ValidateToken(second)
	assert.NoError(t, err)

	assert.Equal(t, firstClaims.UserID, secondClaims.UserID)
	assert.Equal(t, firstClaims.Username, secondClaims.Username)
	assert.Equal(t, firstClaims.Role, secondClaims.Role)
}

func TestJWTService_ExpiryClaim(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	assert.NoError(t, err)

	token, err := jwtService.IssueSessionToken(&entity.Seller{ID: uuid.New(), Name: "Bob"})
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(0))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(0))
	assert.NoError(t, err)

	otherCfg := newTestJWTConfig(0)
	otherCfg.SecretKey.JWT = "a_completely_different_secret_key"
	verifier, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := issuer.IssueSessionToken(&entity.Seller{ID: uuid.New(), Name: "Eve"})
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
