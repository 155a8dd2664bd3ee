package mocks

import (
	"github.com/arifrizal16/sahasrara/domain"
)

// MockSessionCodec implements domain.SessionCodec interface for testing
type MockSessionCodec struct {
	EncodeFunc func(session *domain.Session) (string, error)
	DecodeFunc func(token string) (*domain.Session, error)
}

// NewMockSessionCodec creates a new MockSessionCodec with default behaviors
func NewMockSessionCodec() *MockSessionCodec {
	return &MockSessionCodec{}
}

// Encode serializes a session
func (m *MockSessionCodec) Encode(session *domain.Session) (string, error) {
	if m.EncodeFunc != nil {
		return m.EncodeFunc(session)
	}
	// Default behavior: fixed token
	return "mock-token", nil
}

// Decode parses a token
func (m *MockSessionCodec) Decode(token string) (*domain.Session, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(token)
	}
	// Default behavior: malformed
	return nil, domain.ErrSessionMalformed
}

// Compile-time interface compliance verification
var _ domain.SessionCodec = (*MockSessionCodec)(nil)
