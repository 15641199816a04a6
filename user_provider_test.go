package userservice_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userservice "github.com/edenbercier/userservice"
)

func newStoredUser(t *testing.T, email, password string) *userservice.User {
	t.Helper()

	hash, err := userservice.HashPassword(password)
	require.NoError(t, err)

	return &userservice.User{
		ID:           uuid.New(),
		FirstName:    "Alice",
		LastName:     "Doe",
		Username:     "alice",
		Email:        email,
		PasswordHash: hash,
	}
}

func TestUserProvider_VerifyIdentity(t *testing.T) {
	t.Run("returns identity with the stable public id", func(t *testing.T) {
		user := newStoredUser(t, "alice@example.com", "12345678")

		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "alice@example.com").Return(user, nil)

		provider := userservice.NewUserProvider(store).WithLogger(nopLogger{})

		identity, err := provider.VerifyIdentity(context.Background(), "alice@example.com", "12345678")
		require.NoError(t, err)

		// the token subject is the stored public id, not the email
		assert.Equal(t, user.ID.String(), identity.ID())
		assert.NotEqual(t, "alice@example.com", identity.ID())
		assert.Equal(t, "alice@example.com", identity.Email())

		store.AssertExpectations(t)
	})

	t.Run("wrong password and unknown identifier are indistinguishable", func(t *testing.T) {
		user := newStoredUser(t, "alice@example.com", "12345678")

		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "alice@example.com").Return(user, nil)
		store.On("GetByIdentifier", mock.Anything, "nobody@example.com").
			Return(nil, goerrors.New("record not found", goerrors.CategoryNotFound))

		provider := userservice.NewUserProvider(store).WithLogger(nopLogger{})

		_, badPassErr := provider.VerifyIdentity(context.Background(), "alice@example.com", "wrongpass")
		_, unknownErr := provider.VerifyIdentity(context.Background(), "nobody@example.com", "wrongpass")

		require.Error(t, badPassErr)
		require.Error(t, unknownErr)
		assert.Equal(t, badPassErr, unknownErr)
		assert.True(t, userservice.IsInvalidCredentialsError(badPassErr))
		assert.True(t, userservice.IsInvalidCredentialsError(unknownErr))
	})

	t.Run("store outage is not a credential decision", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "alice@example.com").
			Return(nil, goerrors.New("connection refused", goerrors.CategoryInternal))

		provider := userservice.NewUserProvider(store).WithLogger(nopLogger{})

		identity, err := provider.VerifyIdentity(context.Background(), "alice@example.com", "12345678")
		assert.Nil(t, identity)
		require.Error(t, err)
		assert.False(t, userservice.IsInvalidCredentialsError(err))
	})
}

func TestUserProvider_FindIdentityByIdentifier(t *testing.T) {
	t.Run("resolves without a credential check", func(t *testing.T) {
		user := newStoredUser(t, "alice@example.com", "12345678")

		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, user.ID.String()).Return(user, nil)

		provider := userservice.NewUserProvider(store).WithLogger(nopLogger{})

		identity, err := provider.FindIdentityByIdentifier(context.Background(), user.ID.String())
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), identity.ID())
	})

	t.Run("reports missing identities", func(t *testing.T) {
		store := &MockUserStore{}
		store.On("GetByIdentifier", mock.Anything, "missing").
			Return(nil, goerrors.New("record not found", goerrors.CategoryNotFound))

		provider := userservice.NewUserProvider(store).WithLogger(nopLogger{})

		identity, err := provider.FindIdentityByIdentifier(context.Background(), "missing")
		assert.Nil(t, identity)
		assert.ErrorIs(t, err, userservice.ErrIdentityNotFound)
	})
}
