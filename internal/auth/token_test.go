package auth

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenIssuer("test-secret", time.Hour)

	token, err := tokens.Issue(42, "ann@x.com")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", token)

	claims, err := tokens.Verify(token)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ann@x.com", claims.Email)
}

func TestVerifyExpiredToken(t *testing.T) {
	tokens := NewTokenIssuer("test-secret", -time.Minute)

	token, err := tokens.Issue(1, "ann@x.com")
	assert.Equal(t, nil, err)

	_, err = tokens.Verify(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	verifier := NewTokenIssuer("secret-b", time.Hour)

	token, err := issuer.Issue(1, "ann@x.com")
	assert.Equal(t, nil, err)

	_, err = verifier.Verify(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestVerifyGarbage(t *testing.T) {
	tokens := NewTokenIssuer("test-secret", time.Hour)

	_, err := tokens.Verify("not-a-token")
	assert.Equal(t, ErrInvalidToken, err)
}
