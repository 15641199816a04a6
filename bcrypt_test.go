package userservice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userservice "github.com/edenbercier/userservice"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "securePassword123!",
			wantErr:  false,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  true, // bcrypt can hash empty strings, we refuse to
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := userservice.HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, hash)

			err = userservice.ComparePasswordAndHash(tt.password, hash)
			assert.NoError(t, err)
		})
	}
}

func TestComparePasswordAndHash(t *testing.T) {
	hash, err := userservice.HashPassword("12345678")
	require.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		assert.NoError(t, userservice.ComparePasswordAndHash("12345678", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		err := userservice.ComparePasswordAndHash("wrongpass", hash)
		assert.ErrorIs(t, err, userservice.ErrMismatchedHashAndPassword)
	})

	t.Run("garbage hash", func(t *testing.T) {
		err := userservice.ComparePasswordAndHash("12345678", "not-a-hash")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, userservice.ErrMismatchedHashAndPassword)
	})
}
