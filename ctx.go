package userservice

import (
	"context"
)

var claimsCtxKey = &contextKey{"claims"}

type contextKey struct {
	name string
}

// WithClaimsContext sets the AuthClaims in the given context. The
// middleware calls this at most once per request; nothing else writes it.
func WithClaimsContext(r context.Context, claims AuthClaims) context.Context {
	return context.WithValue(r, claimsCtxKey, claims)
}

// GetClaims extracts the AuthClaims from the standard context
func GetClaims(ctx context.Context) (AuthClaims, bool) {
	raw, ok := ctx.Value(claimsCtxKey).(AuthClaims)
	return raw, ok
}

// IsAuthenticated reports whether the context carries validated claims
func IsAuthenticated(ctx context.Context) bool {
	claims, ok := GetClaims(ctx)
	return ok && claims != nil && claims.Subject() != ""
}

// AuthenticatedSubject returns the subject of the context's claims, or
// the empty string for anonymous requests.
func AuthenticatedSubject(ctx context.Context) string {
	claims, ok := GetClaims(ctx)
	if !ok || claims == nil {
		return ""
	}
	return claims.Subject()
}
