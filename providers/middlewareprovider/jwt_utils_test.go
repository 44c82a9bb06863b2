package middlewareprovider

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-42", []string{"User", "Manager"})
	require.NoError(t, err)

	sub, roles, err := ParseJWT(token)

	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
	assert.Equal(t, []string{"User", "Manager"}, roles)
}

func TestParseRefreshToken(t *testing.T) {
	t.Run("round trips its own tokens", func(t *testing.T) {
		token, err := GenerateRefreshToken("user-42")
		require.NoError(t, err)

		sub, err := ParseRefreshToken(token)

		require.NoError(t, err)
		assert.Equal(t, "user-42", sub)
	})

	t.Run("rejects a token without the refresh type", func(t *testing.T) {
		// Signed with the refresh secret but typed as an access token, so
		// only the typ claim can tell it apart.
		claims := jwt.MapClaims{
			"sub": "user-42",
			"typ": "access",
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(refreshTokenSecretKey)
		require.NoError(t, err)

		_, err = ParseRefreshToken(token)

		assert.Error(t, err)
	})
}
