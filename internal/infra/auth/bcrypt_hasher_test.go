package auth

import (
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}} // Minimal cost keeps the tests fast.

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "Secret123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	hash1, err := hasher.Hash("Secret123!")
	assert.NoError(t, err)
	hash2, err := hasher.Hash("Secret123!")
	assert.NoError(t, err)

	// Same password, different salts, different hashes.
	assert.NotEqual(t, hash1, hash2)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "Secret123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Nil auth section falls back to bcrypt's default cost.
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, 10, hasher.cost)

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 12}}
	hasher = NewBcryptHasher(cfg).(*bcryptHasher)
	assert.Equal(t, 12, hasher.cost)
}
