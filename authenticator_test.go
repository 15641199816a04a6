package userservice_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userservice "github.com/edenbercier/userservice"
)

type testConfig struct {
	signingKey      string
	tokenExpiration int
	issuer          string
}

func (c testConfig) GetSigningKey() string   { return c.signingKey }
func (c testConfig) GetTokenExpiration() int { return c.tokenExpiration }
func (c testConfig) GetIssuer() string       { return c.issuer }
func (c testConfig) GetAudience() []string   { return nil }
func (c testConfig) GetContextKey() string   { return "user" }
func (c testConfig) GetTokenLookup() string  { return "" }
func (c testConfig) GetAuthScheme() string   { return "Bearer" }

func newTestConfig() testConfig {
	return testConfig{
		signingKey:      "test-signing-key",
		tokenExpiration: 1,
		issuer:          "test-issuer",
	}
}

func TestAuther_Login(t *testing.T) {
	t.Run("returns token and user id on success", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		identity := staticIdentity{id: "pub-id-1", email: "alice@example.com"}
		provider.On("VerifyIdentity", mock.Anything, "alice@example.com", "12345678").
			Return(identity, nil)

		auther := userservice.NewAuthenticator(provider, newTestConfig()).
			WithLogger(nopLogger{})

		result, err := auther.Login(context.Background(), "alice@example.com", "12345678")
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "pub-id-1", result.UserID)
		assert.NotEmpty(t, result.Token)

		// the token must round trip back to the same subject
		claims, err := auther.TokenService().Validate(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "pub-id-1", claims.Subject())

		provider.AssertExpectations(t)
	})

	t.Run("propagates credential rejection", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		provider.On("VerifyIdentity", mock.Anything, "alice@example.com", "wrongpass").
			Return(nil, userservice.ErrMismatchedHashAndPassword)

		auther := userservice.NewAuthenticator(provider, newTestConfig()).
			WithLogger(nopLogger{})

		result, err := auther.Login(context.Background(), "alice@example.com", "wrongpass")
		assert.Nil(t, result)
		assert.True(t, userservice.IsInvalidCredentialsError(err))
	})

	t.Run("propagates infrastructure failures unchanged", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		storeErr := goerrors.New("store unavailable", goerrors.CategoryInternal)
		provider.On("VerifyIdentity", mock.Anything, "alice@example.com", "12345678").
			Return(nil, storeErr)

		auther := userservice.NewAuthenticator(provider, newTestConfig()).
			WithLogger(nopLogger{})

		result, err := auther.Login(context.Background(), "alice@example.com", "12345678")
		assert.Nil(t, result)
		require.Error(t, err)
		assert.False(t, userservice.IsInvalidCredentialsError(err))
	})

	t.Run("rejects nil identity", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		provider.On("VerifyIdentity", mock.Anything, "alice@example.com", "12345678").
			Return(nil, nil)

		auther := userservice.NewAuthenticator(provider, newTestConfig()).
			WithLogger(nopLogger{})

		result, err := auther.Login(context.Background(), "alice@example.com", "12345678")
		assert.Nil(t, result)
		assert.True(t, userservice.IsInvalidCredentialsError(err))
	})
}

func TestAuther_IdentityFromToken(t *testing.T) {
	t.Run("resolves identity for a valid token", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		identity := staticIdentity{id: "pub-id-1", email: "alice@example.com"}
		provider.On("VerifyIdentity", mock.Anything, "alice@example.com", "12345678").
			Return(identity, nil)
		provider.On("FindIdentityByIdentifier", mock.Anything, "pub-id-1").
			Return(identity, nil)

		auther := userservice.NewAuthenticator(provider, newTestConfig()).
			WithLogger(nopLogger{})

		result, err := auther.Login(context.Background(), "alice@example.com", "12345678")
		require.NoError(t, err)

		resolved, err := auther.IdentityFromToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "pub-id-1", resolved.ID())

		provider.AssertExpectations(t)
	})

	t.Run("fails closed on a bad token", func(t *testing.T) {
		provider := &MockIdentityProvider{}

		auther := userservice.NewAuthenticator(provider, newTestConfig()).
			WithLogger(nopLogger{})

		resolved, err := auther.IdentityFromToken("not-a-token")
		assert.Nil(t, resolved)
		assert.Error(t, err)
	})
}
