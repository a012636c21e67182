package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeService_GenerateCode(t *testing.T) {
	svc := NewCodeService()

	code, err := svc.GenerateCode()
	require.NoError(t, err)

	// 20 random bytes encode to 32 unpadded base32 characters.
	assert.Len(t, code, 32)
	assert.NotContains(t, code, "=")
}

func TestCodeService_GenerateCode_Unique(t *testing.T) {
	svc := NewCodeService()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := svc.GenerateCode()
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code generated")
		seen[code] = true
	}
}
