package userservice

import (
	"context"
	"reflect"
)

// Auther authenticates credentials once at login and mints bearer tokens.
// It owns no state beyond its collaborators; every request level decision
// happens in middleware/jwtware.
type Auther struct {
	provider     IdentityProvider
	logger       Logger
	tokenService TokenService
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		opts.GetAudience(),
		defLogger{},
	)

	return &Auther{
		provider:     provider,
		logger:       defLogger{},
		tokenService: tokenService,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// WithTokenService overrides the token service, mainly for tests
func (s *Auther) WithTokenService(ts TokenService) *Auther {
	s.tokenService = ts
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the identifier/password pair and issues a signed token.
// Credential failures come back as ErrMismatchedHashAndPassword regardless
// of which check tripped; anything else is an infrastructure error.
func (s *Auther) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	identity, err := s.provider.VerifyIdentity(ctx, identifier, password)
	if err != nil {
		if IsInvalidCredentialsError(err) {
			s.logger.Info("Login rejected", "identifier", identifier)
		} else {
			s.logger.Error("Login verify identity error", "error", err)
		}
		return nil, err
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Error("Login identity is nil or zero value")
		return nil, ErrMismatchedHashAndPassword
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("Login token generation failed", "error", err)
		return nil, err
	}

	return &LoginResult{
		Token:  token,
		UserID: identity.ID(),
	}, nil
}

// IdentityFromToken validates a raw token and resolves the identity it
// encodes via the identity provider.
func (s *Auther) IdentityFromToken(raw string) (Identity, error) {
	claims, err := s.tokenService.Validate(raw)
	if err != nil {
		s.logger.Debug("IdentityFromToken validation failed", "error", err)
		return nil, err
	}

	identity, err := s.provider.FindIdentityByIdentifier(context.Background(), claims.Subject())
	if err != nil {
		s.logger.Error("IdentityFromToken lookup failed", "error", err)
		return nil, err
	}

	return identity, nil
}

var _ Authenticator = (*Auther)(nil)
