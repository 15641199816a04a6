// Package jwtware provides the request authentication middleware: it
// rebuilds an authenticated identity from the Authorization header on
// every request. The middleware only ever populates context; rejecting
// anonymous requests is the job of the Protected guard so that a broken
// token degrades to anonymous instead of terminating the request early.
package jwtware

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var (
	defaultTokenLookup       = "header:" + fiber.HeaderAuthorization
	ErrJWTMissingOrMalformed = errors.New("missing or malformed JWT")
)

// TokenValidator interface for validating tokens without import cycles.
// This mirrors the TokenService.Validate method from the root package.
type TokenValidator interface {
	Validate(tokenString string) (AuthClaims, error)
}

// AuthClaims interface for structured claims without import cycles.
// This mirrors the AuthClaims interface from the root package.
type AuthClaims interface {
	Subject() string
	UserID() string
	Expires() time.Time
	IssuedAt() time.Time
}

// Logger is the subset of the root package logger the middleware needs
type Logger interface {
	Debug(format string, args ...any)
	Warn(format string, args ...any)
}

type Config struct {
	// Filter skips the middleware entirely when it returns true
	Filter func(*fiber.Ctx) bool

	// TokenValidator is required for token validation
	TokenValidator TokenValidator

	// ContextKey is the fiber locals key the validated claims are stored
	// under. Defaults to "user".
	ContextKey string

	// TokenLookup is a comma separated list of "source:name" entries,
	// e.g. "header:Authorization,query:auth_token,cookie:jwt".
	TokenLookup string

	// AuthScheme is the expected header prefix. Defaults to "Bearer".
	AuthScheme string

	// Logger records decode failures for observability. The failure kind
	// never reaches the response.
	Logger Logger

	// ContextEnricher propagates claims to the standard Go context after
	// successful validation.
	ContextEnricher func(c context.Context, claims AuthClaims) context.Context

	// OnValidated is invoked after a token validates, before the request
	// proceeds. Use it for metrics or bookkeeping.
	OnValidated func(c *fiber.Ctx, claims AuthClaims)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

// New returns the context populating middleware. Requests always proceed:
// with claims in context when a valid token was presented, anonymous
// otherwise.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		raw, err := ExtractRawToken(c, cfg.getExtractors())
		if err != nil || raw == "" {
			// no credential presented, proceed anonymous
			return c.Next()
		}

		claims, err := cfg.TokenValidator.Validate(raw)
		if err != nil {
			// invalid credential degrades to anonymous, never to
			// authenticated; the kind of failure stays in the logs
			cfg.Logger.Debug("token rejected", "error", err)
			return c.Next()
		}

		c.Locals(cfg.ContextKey, claims)

		if cfg.OnValidated != nil {
			cfg.OnValidated(c, claims)
		}

		if cfg.ContextEnricher != nil {
			c.SetUserContext(cfg.ContextEnricher(c.UserContext(), claims))
		}

		return c.Next()
	}
}

// ClaimsFromLocals returns the claims a previous New middleware stored,
// if any.
func ClaimsFromLocals(c *fiber.Ctx, contextKey string) (AuthClaims, bool) {
	if contextKey == "" {
		contextKey = "user"
	}
	claims, ok := c.Locals(contextKey).(AuthClaims)
	return claims, ok && claims != nil
}

// Protected returns the access gate for routes that require an
// authenticated caller. It only inspects the context populated by New.
func Protected(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	return func(c *fiber.Ctx) error {
		if claims, ok := ClaimsFromLocals(c, cfg.ContextKey); ok && claims.Subject() != "" {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "forbidden",
		})
	}
}

func configDefault(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = "user"
	}

	if cfg.TokenLookup == "" {
		cfg.TokenLookup = defaultTokenLookup
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}

	return cfg
}

func (cfg *Config) getExtractors() []JWTExtractor {
	return GetExtractors(cfg.TokenLookup, cfg.AuthScheme)
}

// ExtractRawToken runs the extractors in order and returns the first
// token found.
func ExtractRawToken(c *fiber.Ctx, extractors []JWTExtractor) (string, error) {
	var raw string
	var err error

	for _, extractor := range extractors {
		raw, err = extractor(c)
		if raw != "" && err == nil {
			break
		}
	}

	return raw, err
}

// GetExtractors parses a TokenLookup string into extractor functions
func GetExtractors(tokenLookup string, authSchemes ...string) []JWTExtractor {
	extractors := make([]JWTExtractor, 0)

	authScheme := "Bearer"
	if len(authSchemes) > 0 {
		authScheme = authSchemes[0]
	}

	// header:Authorization,cookie:jwt,query:auth_token
	rootParts := strings.Split(tokenLookup, ",")
	for _, rootPart := range rootParts {
		parts := strings.Split(strings.TrimSpace(rootPart), ":")
		if len(parts) != 2 {
			continue
		}

		for i, el := range parts {
			parts[i] = strings.TrimSpace(el)
		}

		switch parts[0] {
		case "header":
			extractors = append(extractors, jwtFromHeader(parts[1], authScheme))
		case "query":
			extractors = append(extractors, jwtFromQuery(parts[1]))
		case "cookie":
			extractors = append(extractors, jwtFromCookie(parts[1]))
		}
	}

	return extractors
}

type JWTExtractor func(c *fiber.Ctx) (string, error)

// jwtFromHeader returns a function that extracts the token from the
// request header, stripping the auth scheme prefix.
func jwtFromHeader(header string, authScheme string) JWTExtractor {
	return func(c *fiber.Ctx) (string, error) {
		a := c.Get(header)
		authScheme = strings.TrimSpace(authScheme)
		l := len(authScheme)
		if l == 0 {
			return "", ErrJWTMissingOrMalformed
		}
		if len(a) > l+1 && strings.EqualFold(a[:l], authScheme) {
			return strings.TrimSpace(a[l:]), nil
		}
		return "", ErrJWTMissingOrMalformed
	}
}

// jwtFromQuery returns a function that extracts the token from the query string.
func jwtFromQuery(param string) JWTExtractor {
	return func(c *fiber.Ctx) (string, error) {
		token := c.Query(param)
		if token == "" {
			return "", ErrJWTMissingOrMalformed
		}
		return token, nil
	}
}

// jwtFromCookie returns a function that extracts the token from a cookie.
func jwtFromCookie(name string) JWTExtractor {
	return func(c *fiber.Ctx) (string, error) {
		token := c.Cookies(name)
		if token == "" {
			return "", ErrJWTMissingOrMalformed
		}
		return token, nil
	}
}
