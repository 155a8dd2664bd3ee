package mocks

import (
	"context"

	"github.com/arifrizal16/sahasrara/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, pin string, rememberMe bool, clientKey string) (*domain.LoginResult, error)
	ChangePINFunc    func(ctx context.Context, currentPIN, newPIN string) (*domain.Account, string, error)
	CheckSessionFunc func(token string) (*domain.Session, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login authenticates a PIN
func (m *MockAuthService) Login(ctx context.Context, pin string, rememberMe bool, clientKey string) (*domain.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, pin, rememberMe, clientKey)
	}
	// Default behavior: wrong PIN
	return nil, domain.ErrInvalidCredentials
}

// ChangePIN rotates the credential
func (m *MockAuthService) ChangePIN(ctx context.Context, currentPIN, newPIN string) (*domain.Account, string, error) {
	if m.ChangePINFunc != nil {
		return m.ChangePINFunc(ctx, currentPIN, newPIN)
	}
	// Default behavior: wrong PIN
	return nil, "", domain.ErrInvalidCredentials
}

// CheckSession validates a session token
func (m *MockAuthService) CheckSession(token string) (*domain.Session, error) {
	if m.CheckSessionFunc != nil {
		return m.CheckSessionFunc(token)
	}
	// Default behavior: malformed
	return nil, domain.ErrSessionMalformed
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
