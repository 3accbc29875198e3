package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, method jwt.SigningMethod, secret interface{}, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestParse(t *testing.T) {
	parser := NewParser("top-secret")
	require.True(t, parser.Enabled())

	token := sign(t, jwt.SigningMethodHS256, []byte("top-secret"), Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "admin",
	})

	principal, err := parser.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, Principal{Subject: "user-1", Role: "admin"}, principal)
}

func TestParseFallsBackToUserID(t *testing.T) {
	parser := NewParser("top-secret")
	token := sign(t, jwt.SigningMethodHS256, []byte("top-secret"), Claims{UserID: "42"})

	principal, err := parser.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "42", principal.Subject)
}

func TestParseRejects(t *testing.T) {
	parser := NewParser("top-secret")

	expired := sign(t, jwt.SigningMethodHS256, []byte("top-secret"), Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	_, err := parser.Parse(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)

	wrongSecret := sign(t, jwt.SigningMethodHS256, []byte("other"), Claims{UserID: "1"})
	_, err = parser.Parse(wrongSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noSubject := sign(t, jwt.SigningMethodHS256, []byte("top-secret"), Claims{})
	_, err = parser.Parse(noSubject)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = parser.Parse("  ")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = parser.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer  abc "))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken(""))
	assert.False(t, NewParser(" ").Enabled())
}
