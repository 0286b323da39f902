package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestJWTRoundTrip(t *testing.T) {
	token, err := MakeJWT("user-123", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "user-123", subject)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := MakeJWT("user-123", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	require.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	token, err := MakeJWT("user-123", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	require.Error(t, err)
}

func TestGetBearerToken(t *testing.T) {
	t.Run("Extracts the token", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Authorization", "Bearer abc123")

		token, err := GetBearerToken(headers)
		require.NoError(t, err)
		require.Equal(t, "abc123", token)
	})

	t.Run("Missing header", func(t *testing.T) {
		_, err := GetBearerToken(http.Header{})
		require.ErrorIs(t, err, ErrNoAuthorizationHeader)
	})

	t.Run("Wrong scheme", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Authorization", "Basic abc123")

		_, err := GetBearerToken(headers)
		require.ErrorIs(t, err, ErrMalformedAuthHeader)
	})

	t.Run("Empty token", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Authorization", "Bearer   ")

		_, err := GetBearerToken(headers)
		require.ErrorIs(t, err, ErrNoTokenInAuthHeader)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	require.NoError(t, CheckPasswordHash(hash, "hunter2"))
	require.ErrorIs(t, CheckPasswordHash(hash, "wrong"), ErrInvalidCredentials)
}
