package userservice

import (
	"context"

	"github.com/edenbercier/userservice/middleware/jwtware"
)

// JWTValidator adapts a TokenService to the middleware's mirror
// TokenValidator interface.
func JWTValidator(ts TokenService) jwtware.TokenValidator {
	return tokenValidatorAdapter{ts: ts}
}

type tokenValidatorAdapter struct {
	ts TokenService
}

func (a tokenValidatorAdapter) Validate(tokenString string) (jwtware.AuthClaims, error) {
	claims, err := a.ts.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// ContextEnricherAdapter adapts jwtware.AuthClaims to the root package
// AuthClaims and stores them in the standard context so non-HTTP code can
// use GetClaims / IsAuthenticated.
func ContextEnricherAdapter(c context.Context, claims jwtware.AuthClaims) context.Context {
	authClaims, ok := claims.(AuthClaims)
	if !ok {
		return c
	}

	return WithClaimsContext(c, authClaims)
}
