package userservice

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes surfaced in structured error payloads. They identify the
// failure class without leaking which check tripped.
const (
	TextCodeInvalidCreds       = "INVALID_CREDENTIALS"
	TextCodeTokenExpired       = "TOKEN_EXPIRED"
	TextCodeTokenMalformed     = "TOKEN_MALFORMED"
	TextCodeTokenBadSignature  = "TOKEN_BAD_SIGNATURE"
	TextCodeEmptyPassword      = "EMPTY_PASSWORD"
	TextCodeClaimsMappingError = "CLAIMS_MAPPING_ERROR"
)

// ErrIdentityNotFound is the error we return for non found identities.
// It never crosses the login boundary; callers collapse it into
// ErrMismatchedHashAndPassword before responding.
var ErrIdentityNotFound = goerrors.New("identity not found", goerrors.CategoryNotFound)

// ErrMismatchedHashAndPassword is the single user visible credential
// failure. Unknown identifier and wrong password both map here.
var ErrMismatchedHashAndPassword = goerrors.New("the credentials provided are invalid", goerrors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds)

// ErrTokenExpired marks a token whose exp claim is in the past
var ErrTokenExpired = goerrors.New("token is expired", goerrors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired)

// ErrTokenMalformed marks a token that fails structural parsing or whose
// claim shape does not match the expected sub/iat/exp record
var ErrTokenMalformed = goerrors.New("token is malformed", goerrors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed)

// ErrTokenSignatureInvalid marks a token whose HMAC does not verify
var ErrTokenSignatureInvalid = goerrors.New("token signature is invalid", goerrors.CategoryAuth).
	WithTextCode(TextCodeTokenBadSignature)

// ErrUnableToMapClaims unable to get structured claims from a parsed token
var ErrUnableToMapClaims = goerrors.New("unable to map claims", goerrors.CategoryAuth).
	WithTextCode(TextCodeClaimsMappingError)

// ErrNoEmptyString rejects empty passwords before hashing
var ErrNoEmptyString = goerrors.New("password must not be empty", goerrors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword)

// IsInvalidCredentialsError reports whether err is the collapsed
// credential failure
func IsInvalidCredentialsError(err error) bool {
	return goerrors.Is(err, ErrMismatchedHashAndPassword)
}

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if goerrors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for structurally invalid tokens
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if goerrors.Is(err, ErrTokenMalformed) {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
