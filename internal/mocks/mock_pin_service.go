package mocks

import (
	"github.com/arifrizal16/sahasrara/domain"
)

// MockPinService implements domain.PinService interface for testing
type MockPinService struct {
	HashFunc   func(pin string) (string, error)
	VerifyFunc func(pinHash, pin string) bool
}

// NewMockPinService creates a new MockPinService with default behaviors
func NewMockPinService() *MockPinService {
	return &MockPinService{}
}

// Hash hashes a PIN
func (m *MockPinService) Hash(pin string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(pin)
	}
	// Default behavior: reversible marker hash
	return "hash:" + pin, nil
}

// Verify compares a hash against a PIN
func (m *MockPinService) Verify(pinHash, pin string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(pinHash, pin)
	}
	// Default behavior: match the marker hash
	return pinHash == "hash:"+pin
}

// Compile-time interface compliance verification
var _ domain.PinService = (*MockPinService)(nil)
