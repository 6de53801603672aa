package authn

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return token
}

func TestParseClaims_ReadsClaimsWithoutVerifying(t *testing.T) {
	token := signedToken(t, Claims{
		StandardClaims: jwt.StandardClaims{Subject: "firebase-uid"},
		Email:          "ana@example.com",
		Name:           "Ana",
	})

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestParseClaims_Malformed(t *testing.T) {
	_, err := ParseClaims("invalid-token")
	assert.ErrorIs(t, err, ErrInvalidJWT)

	_, err = ParseClaims("a.b.c")
	assert.ErrorIs(t, err, ErrInvalidJWT)
}
