package mocks

import (
	"context"

	"github.com/arifrizal16/sahasrara/domain"
)

// MockTransactionRepository implements domain.TransactionRepository interface for testing
type MockTransactionRepository struct {
	CreateFunc      func(ctx context.Context, tx *domain.Transaction) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.Transaction, error)
	UpdateFunc      func(ctx context.Context, tx *domain.Transaction) error
	DeleteFunc      func(ctx context.Context, id string) error
	ListFunc        func(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error)
	FindInRangeFunc func(ctx context.Context, filter domain.RevenueFilter) ([]*domain.Transaction, error)
}

// NewMockTransactionRepository creates a new MockTransactionRepository with default behaviors
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a transaction by ID
func (m *MockTransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrTransactionNotFound
}

// Update updates an existing transaction
func (m *MockTransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx)
	}
	// Default behavior: success
	return nil
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: not found
	return domain.ErrTransactionNotFound
}

// List returns a page of transactions
func (m *MockTransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty page
	return &domain.TransactionPage{Page: 1, Limit: 50}, nil
}

// FindInRange returns transactions inside a date range
func (m *MockTransactionRepository) FindInRange(ctx context.Context, filter domain.RevenueFilter) ([]*domain.Transaction, error) {
	if m.FindInRangeFunc != nil {
		return m.FindInRangeFunc(ctx, filter)
	}
	// Default behavior: no rows
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.TransactionRepository = (*MockTransactionRepository)(nil)
