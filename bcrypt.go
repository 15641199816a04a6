package userservice

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is a valid bcrypt hash of an unguessable random
// string. VerifyIdentity compares against it when the identifier is
// unknown so both failure paths cost one bcrypt comparison.
const dummyPasswordHash = "$2a$14$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword will generate a password hash
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost())
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext
// password matches the hashed password
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}

// burnPasswordComparison performs a throwaway bcrypt comparison. The
// result is always a mismatch.
func burnPasswordComparison(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
}
