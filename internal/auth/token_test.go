package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", "healthforum", "healthforum-clients", time.Hour)

	token, err := issuer.IssueToken("user-123", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "healthforum", claims.Issuer)
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", "healthforum", "healthforum-clients", time.Hour)
	other := NewTokenIssuer("different", "healthforum", "healthforum-clients", time.Hour)

	token, err := issuer.IssueToken("user-123", "user@example.com")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", "healthforum", "healthforum-clients", time.Nanosecond)

	token, err := issuer.IssueToken("user-123", "user@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = issuer.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenIssuerMismatch(t *testing.T) {
	issuer := NewTokenIssuer("secret", "other-service", "healthforum-clients", time.Hour)
	verifier := NewTokenIssuer("secret", "healthforum", "healthforum-clients", time.Hour)

	token, err := issuer.IssueToken("user-123", "user@example.com")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenAudienceMismatch(t *testing.T) {
	issuer := NewTokenIssuer("secret", "healthforum", "other-clients", time.Hour)
	verifier := NewTokenIssuer("secret", "healthforum", "healthforum-clients", time.Hour)

	token, err := issuer.IssueToken("user-123", "user@example.com")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer("secret", "healthforum", "healthforum-clients", time.Hour)

	_, err := issuer.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestDefaultTTLApplied(t *testing.T) {
	issuer := NewTokenIssuer("secret", "healthforum", "healthforum-clients", 0)

	token, err := issuer.IssueToken("user-123", "user@example.com")
	require.NoError(t, err)

	claims, err := issuer.ParseToken(token)
	require.NoError(t, err)
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, DefaultTokenTTL, lifetime)
}
