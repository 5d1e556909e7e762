package jwthelper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/inventory-ledger-api/internal/pkg/jwthelper"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := jwthelper.GenerateToken(key, "user-1", "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwthelper.ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "test-agent", claims.UserAgent)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte("test-signing-key"), "user-1", "test-agent")
	require.NoError(t, err)

	_, err = jwthelper.ParseToken([]byte("another-key"), token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := jwthelper.ParseToken([]byte("test-signing-key"), "not-a-token")
	assert.Error(t, err)
}
