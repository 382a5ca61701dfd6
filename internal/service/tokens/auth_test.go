package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateUserJWT(42, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.False(t, claims.Admin)

	_, err = ValidateUserJWT(token, []byte("other"))
	assert.Error(t, err)
}

func TestAdminJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateAdminJWT(7, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.True(t, claims.Admin)
}

func TestExpiredJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateUserJWT(1, -time.Minute, key)
	require.NoError(t, err)

	_, err = ValidateUserJWT(token, key)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestForeignIssuerJWT(t *testing.T) {
	key := []byte("secret")

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		ID: 1,
	}).SignedString(key)
	require.NoError(t, err)

	_, err = ValidateUserJWT(foreign, key)
	assert.Error(t, err)
}
