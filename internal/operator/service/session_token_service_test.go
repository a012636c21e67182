package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenService_GenerateToken(t *testing.T) {
	svc := NewSessionTokenService()

	plainToken, tokenHash, err := svc.GenerateToken()
	require.NoError(t, err)

	assert.NotEmpty(t, plainToken)
	assert.NotEmpty(t, tokenHash)
	assert.NotEqual(t, plainToken, tokenHash)
	assert.Equal(t, tokenHash, svc.HashToken(plainToken))

	// SHA-256 hex is 64 characters.
	assert.Len(t, tokenHash, 64)
}

func TestSessionTokenService_GenerateToken_Unique(t *testing.T) {
	svc := NewSessionTokenService()

	first, _, err := svc.GenerateToken()
	require.NoError(t, err)
	second, _, err := svc.GenerateToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
