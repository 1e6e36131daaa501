package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("mat-khau-bi-mat")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "mat-khau-bi-mat", hash)

	assert.True(t, CheckPasswordHash("mat-khau-bi-mat", hash))
	assert.False(t, CheckPasswordHash("sai-mat-khau", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("mat-khau-bi-mat")
	require.NoError(t, err)
	second, err := HashPassword("mat-khau-bi-mat")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}
