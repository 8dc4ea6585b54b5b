package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", hashed)
	assert.True(t, ComparePassword(hashed, "secret"))
	assert.False(t, ComparePassword(hashed, "Secret"))
	assert.False(t, ComparePassword("not-a-hash", "secret"))
}
