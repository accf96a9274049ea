package auth

import (
	"testing"

	"dhansaathi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	password := "pw123-correct-horse"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password verifies.
	assert.True(t, hasher.Check(password, hash))

	// Wrong password does not.
	assert.False(t, hasher.Check("pw123-wrong", hash))

	// Empty password does not.
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltRandomization(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	password := "same-password-twice"
	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Two hashes of the same password differ (per-call random salt)...
	assert.NotEqual(t, first, second)

	// ...but both still verify against the original password.
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	// Malformed hashes must yield false, never a panic or error; the caller
	// cannot distinguish a broken hash from a wrong password.
	for _, malformed := range []string{
		"",
		"invalid_hash",
		"$2a$",
		"plaintext-that-looks-like-nothing",
	} {
		assert.False(t, hasher.Check("any-password", malformed))
	}
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)

	assert.True(t, hasher.Check("pw123", hash))
}

func TestBcryptHasher_DefaultCostFallback(t *testing.T) {
	// Missing or out-of-range configuration falls back to the bcrypt default.
	for _, cfg := range []*config.Config{
		nil,
		{},
		{Auth: &config.AuthConfig{BcryptCost: 99}},
	} {
		h, ok := NewBcryptHasher(cfg).(*bcryptHasher)
		require.True(t, ok)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	}
}
