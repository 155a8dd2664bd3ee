package mocks

import (
	"context"

	"github.com/arifrizal16/sahasrara/domain"
)

// MockTransactionService implements domain.TransactionService interface for testing
type MockTransactionService struct {
	CreateFunc func(ctx context.Context, input *domain.TransactionInput) (*domain.Transaction, error)
	UpdateFunc func(ctx context.Context, id string, input *domain.TransactionInput) (*domain.Transaction, error)
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

// NewMockTransactionService creates a new MockTransactionService with default behaviors
func NewMockTransactionService() *MockTransactionService {
	return &MockTransactionService{}
}

// Create validates and stores a record
func (m *MockTransactionService) Create(ctx context.Context, input *domain.TransactionInput) (*domain.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	// Default behavior: missing fields
	return nil, domain.ErrMissingFields
}

// Update validates and rewrites a record
func (m *MockTransactionService) Update(ctx context.Context, id string, input *domain.TransactionInput) (*domain.Transaction, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}
	// Default behavior: not found
	return nil, domain.ErrTransactionNotFound
}

// Delete removes a record
func (m *MockTransactionService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: not found
	return domain.ErrTransactionNotFound
}

// List returns a page of records
func (m *MockTransactionService) List(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty page
	return &domain.TransactionPage{Page: 1, Limit: 50}, nil
}

// Compile-time interface compliance verification
var _ domain.TransactionService = (*MockTransactionService)(nil)
