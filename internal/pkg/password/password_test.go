package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("admin123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "admin123", hash)
	assert.True(t, Verify("admin123", hash))
	assert.False(t, Verify("wrong", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("admin123")
	require.NoError(t, err)
	second, err := Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashToken(t *testing.T) {
	hash := HashToken("some-refresh-token")

	// Deterministic and never the plaintext
	assert.Equal(t, hash, HashToken("some-refresh-token"))
	assert.NotEqual(t, "some-refresh-token", hash)
	assert.Len(t, hash, 64)
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("secret"))
	assert.True(t, ValidatePassword("a-much-longer-password"))
	assert.False(t, ValidatePassword("tiny"))
	assert.False(t, ValidatePassword(""))
}
