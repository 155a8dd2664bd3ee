package mocks

import (
	"context"

	"github.com/arifrizal16/sahasrara/domain"
)

// MockLockoutService implements domain.LockoutService interface for testing
type MockLockoutService struct {
	CheckFunc         func(ctx context.Context, key string) error
	RecordFailureFunc func(ctx context.Context, key string) error
	ClearFunc         func(ctx context.Context, key string) error
}

// NewMockLockoutService creates a new MockLockoutService with default behaviors
func NewMockLockoutService() *MockLockoutService {
	return &MockLockoutService{}
}

// Check reports whether the client is locked out
func (m *MockLockoutService) Check(ctx context.Context, key string) error {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, key)
	}
	// Default behavior: not locked out
	return nil
}

// RecordFailure registers a failed attempt
func (m *MockLockoutService) RecordFailure(ctx context.Context, key string) error {
	if m.RecordFailureFunc != nil {
		return m.RecordFailureFunc(ctx, key)
	}
	// Default behavior: success
	return nil
}

// Clear resets the failure counter
func (m *MockLockoutService) Clear(ctx context.Context, key string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, key)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.LockoutService = (*MockLockoutService)(nil)
