package userservice_test

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/stretchr/testify/mock"

	userservice "github.com/edenbercier/userservice"
)

// MockIdentity implements userservice.Identity for testing
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Username() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Email() string {
	args := m.Called()
	return args.String(0)
}

// MockLogger implements userservice.Logger for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

// nopLogger swallows everything; the default for tests that do not
// assert on log output.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// MockIdentityProvider implements userservice.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, identifier, password string) (userservice.Identity, error) {
	args := m.Called(ctx, identifier, password)
	if identity := args.Get(0); identity != nil {
		return identity.(userservice.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (userservice.Identity, error) {
	args := m.Called(ctx, identifier)
	if identity := args.Get(0); identity != nil {
		return identity.(userservice.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUserStore implements userservice.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByIdentifier(ctx context.Context, identifier string, criteria ...repository.SelectCriteria) (*userservice.User, error) {
	args := m.Called(ctx, identifier)
	if user := args.Get(0); user != nil {
		return user.(*userservice.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type staticIdentity struct {
	id       string
	username string
	email    string
}

func (s staticIdentity) ID() string       { return s.id }
func (s staticIdentity) Username() string { return s.username }
func (s staticIdentity) Email() string    { return s.email }
