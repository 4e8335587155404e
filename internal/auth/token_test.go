package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pawnshop-gateway/internal/auth"
)

func TestClientTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)

	token, expiresAt, err := tm.GenerateClientToken("client-123")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	clientID, err := tm.ParseClientToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client-123", clientID)
}

func TestClientTokenWrongSecretRejected(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	other := auth.NewTokenManager("different", time.Hour)

	token, _, err := tm.GenerateClientToken("client-123")
	require.NoError(t, err)

	_, err = other.ParseClientToken(token)
	assert.Error(t, err)
}

func TestClientTokenGarbageRejected(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)

	_, err := tm.ParseClientToken("not-a-token")
	assert.Error(t, err)
}
