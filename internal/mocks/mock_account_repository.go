package mocks

import (
	"context"

	"github.com/arifrizal16/sahasrara/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	CreateFunc     func(ctx context.Context, account *domain.Account) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Account, error)
	FindActiveFunc func(ctx context.Context) ([]*domain.Account, error)
	ListFunc       func(ctx context.Context) ([]*domain.Account, error)
	UpdatePINFunc  func(ctx context.Context, id uint, pinHash string) error
	CountFunc      func(ctx context.Context) (int64, error)
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// FindByID finds an account by ID
func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindActive lists active accounts
func (m *MockAccountRepository) FindActive(ctx context.Context) ([]*domain.Account, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	// Default behavior: no accounts
	return nil, nil
}

// List lists all accounts
func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: no accounts
	return nil, nil
}

// UpdatePIN rotates an account's PIN hash
func (m *MockAccountRepository) UpdatePIN(ctx context.Context, id uint, pinHash string) error {
	if m.UpdatePINFunc != nil {
		return m.UpdatePINFunc(ctx, id, pinHash)
	}
	// Default behavior: success
	return nil
}

// Count counts all accounts
func (m *MockAccountRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	// Default behavior: empty table
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
