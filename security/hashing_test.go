package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("pass1")
	require.NoError(t, err)
	require.NotEqual(t, "pass1", hashed)

	assert.True(t, CheckPassword("pass1", hashed))
	assert.False(t, CheckPassword("wrong", hashed))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("pass1")
	require.NoError(t, err)
	second, err := HashPassword("pass1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("pass1", first))
	assert.True(t, CheckPassword("pass1", second))
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("pass1", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("pass1", ""))
}
