package tokens

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/scanly/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-key"))
	require.NoError(t, err)
	return s
}

func TestParseClaims(t *testing.T) {
	iat := time.Now().Add(-time.Minute).Truncate(time.Second)
	exp := iat.Add(30 * time.Minute)

	token := signToken(t, jwt.RegisteredClaims{
		Subject:   "bob_01",
		IssuedAt:  jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	c, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "bob_01", c.Subject)
	assert.True(t, c.IssuedAt.Equal(iat))
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.False(t, c.Expired(iat))
	assert.True(t, c.Expired(exp))
}

func TestParseClaims_ExpiredTokenStillReadable(t *testing.T) {
	token := signToken(t, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	c, err := ParseClaims(token)
	require.NoError(t, err)
	assert.True(t, c.Expired(time.Now()))
}

func TestParseClaims_NoExpiry(t *testing.T) {
	c, err := ParseClaims(signToken(t, jwt.RegisteredClaims{Subject: "x"}))
	require.NoError(t, err)
	assert.False(t, c.Expired(time.Now().Add(100*365*24*time.Hour)))
}

func TestParseClaims_Malformed(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := ParseClaims(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken, tok)
	}
}
