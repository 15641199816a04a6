package userservice

import (
	"testing"

	"github.com/google/uuid"
)

func TestUserIdentityAdapter(t *testing.T) {
	id := uuid.New()
	u := &User{
		ID:       id,
		Username: "ada",
		Email:    "ada@example.com",
	}

	identity := u.Identity()

	if identity.ID() != id.String() {
		t.Fatalf("expected identity id %q, got %q", id.String(), identity.ID())
	}
	if identity.Username() != "ada" {
		t.Fatalf("expected username %q, got %q", "ada", identity.Username())
	}
	if identity.Email() != "ada@example.com" {
		t.Fatalf("expected email %q, got %q", "ada@example.com", identity.Email())
	}
}

func TestPrepareUserDefaults(t *testing.T) {
	cases := []struct {
		name         string
		user         *User
		wantUsername string
	}{
		{
			name:         "username derived from email",
			user:         &User{Email: "ada@example.com"},
			wantUsername: "ada",
		},
		{
			name:         "explicit username kept",
			user:         &User{Email: "ada@example.com", Username: "countess"},
			wantUsername: "countess",
		},
		{
			name:         "email without domain used as is",
			user:         &User{Email: "ada"},
			wantUsername: "ada",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prepareUserDefaults(tc.user)

			if tc.user.ID == uuid.Nil {
				t.Fatal("expected a generated id")
			}
			if tc.user.Username != tc.wantUsername {
				t.Fatalf("expected username %q, got %q", tc.wantUsername, tc.user.Username)
			}
		})
	}

	t.Run("existing id kept", func(t *testing.T) {
		id := uuid.New()
		u := &User{ID: id, Email: "ada@example.com"}

		prepareUserDefaults(u)

		if u.ID != id {
			t.Fatalf("expected id %q to survive, got %q", id, u.ID)
		}
	})

	t.Run("nil user is a no-op", func(t *testing.T) {
		prepareUserDefaults(nil)
	})
}
