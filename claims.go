package userservice

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the read side of a validated token
type AuthClaims interface {
	Subject() string
	UserID() string
	Expires() time.Time
	IssuedAt() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims. The token shape
// is fixed: subject, issued-at, and expiry. Tokens missing any of the
// three fail validation instead of degrading silently.
type JWTClaims struct {
	jwt.RegisteredClaims
}

var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim, the stable public user id
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID is an alias for Subject
func (c *JWTClaims) UserID() string {
	return c.Subject()
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// wellFormed reports whether the claim record carries the full
// sub/iat/exp shape.
func (c *JWTClaims) wellFormed() bool {
	return c.RegisteredClaims.Subject != "" &&
		c.RegisteredClaims.IssuedAt != nil &&
		c.RegisteredClaims.ExpiresAt != nil
}
