package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, "admin", "admin", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "pharmatrack", claims.Issuer)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "admin", "admin", testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken(1, "admin", "admin", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessToken_Garbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id-1", testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "token-id-1", claims.TokenID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	access, err := GenerateAccessToken(1, "admin", "admin", testSecret, 15)
	require.NoError(t, err)
	refresh, err := GenerateRefreshToken(1, "token-id-1", "refresh-secret", 7)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(access, "refresh-secret")
	assert.Error(t, err)
	_, err = ValidateAccessToken(refresh, testSecret)
	assert.Error(t, err)
}
