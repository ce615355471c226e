package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testSigningKey = []byte("wT0phFUusHZIrDhL9bUKPUhwaxKhpi0000000000000")

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService(testSigningKey, time.Hour)

	token, err := ts.Issue("a@x.com")
	assert.NoError(t, err, "expected no error issuing token")
	assert.NotEmpty(t, token, "expected a non-empty token")

	subject, err := ts.Verify(token)
	assert.NoError(t, err, "expected freshly issued token to verify")
	assert.Equal(t, "a@x.com", subject, "expected subject to round-trip")
}

func TestVerifyExpiredToken(t *testing.T) {
	ts := NewTokenService(testSigningKey, -time.Minute)

	token, err := ts.Issue("a@x.com")
	assert.NoError(t, err, "expected no error issuing token")

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "expected expired token to be invalid")
}

func TestVerifyInvalidTokens(t *testing.T) {
	ts := NewTokenService(testSigningKey, time.Hour)

	otherTs := NewTokenService([]byte("a-completely-different-signing-key-0000000"), time.Hour)
	foreignToken, err := otherTs.Issue("a@x.com")
	assert.NoError(t, err)

	tcases := []struct {
		name  string
		token string
	}{
		{
			name:  "empty string",
			token: "",
		},
		{
			name:  "malformed encoding",
			token: "not.a.token",
		},
		{
			name:  "signature mismatch",
			token: foreignToken,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ts.Verify(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken, "expected token to be rejected")
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password")
	assert.NoError(t, err, "expected no error hashing password")
	assert.NotEqual(t, "password", hash, "expected hash to differ from plaintext")

	assert.True(t, VerifyPassword(hash, "password"), "expected correct password to verify")
	assert.False(t, VerifyPassword(hash, "wrong-password"), "expected wrong password to fail")
}
