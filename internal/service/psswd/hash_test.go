package psswd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	var hasher PasswordHash

	hash, err := hasher.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, hasher.ComparePassword("s3cret", hash))
	assert.False(t, hasher.ComparePassword("wrong", hash))
	assert.False(t, hasher.ComparePassword("s3cret", "not a hash"))
}
