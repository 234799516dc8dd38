package tokens

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/scanly/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the client can read from an access token without the
// server's signing key.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at now. Tokens
// without an expiry never expire.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseClaims decodes the registered claims of a JWT without verifying the
// signature. The server stays the only authority on validity; this is for
// display only.
func ParseClaims(token string) (Claims, error) {
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	c := Claims{Subject: rc.Subject}
	if rc.IssuedAt != nil {
		c.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}
