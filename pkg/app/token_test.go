package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenGenerateAndParse(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
	})

	token, err := tm.Generate(42, "user@example.com", "127.0.0.1")
	assert.Nil(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	assert.Nil(t, err)
	assert.Equal(t, int64(42), claims.UID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "127.0.0.1", claims.IP)
	assert.Equal(t, DefaultTokenIssuer, claims.Issuer)
}

func TestTokenParseWithWrongKey(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "key-a"})

	token, err := tm.Generate(1, "a@b.c", "")
	assert.Nil(t, err)

	_, err = ParseTokenWithKey(token, "key-b")
	assert.NotNil(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret",
		Expiry:    -time.Minute,
	})

	token, err := tm.Generate(7, "x@y.z", "")
	assert.Nil(t, err)

	err = tm.Validate(token)
	assert.NotNil(t, err)
}
