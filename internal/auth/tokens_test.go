package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := NewTokenService("secret-key", time.Minute)

	raw, err := ts.Issue("user-1")
	require.NoError(t, err)

	claims, err := ts.Verify(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims["sub"])
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Minute)
	verifier := NewTokenService("secret-b", time.Minute)

	raw, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), raw)
	require.Error(t, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	ts := NewTokenService("secret-key", -time.Minute)

	raw, err := ts.Issue("user-1")
	require.NoError(t, err)

	_, err = ts.Verify(context.Background(), raw)
	require.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	ts := NewTokenService("secret-key", time.Minute)
	_, err := ts.Verify(context.Background(), "not-a-token")
	require.Error(t, err)
}
