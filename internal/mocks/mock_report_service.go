package mocks

import (
	"context"
	"io"

	"github.com/arifrizal16/sahasrara/domain"
)

// MockReportService implements domain.ReportService interface for testing
type MockReportService struct {
	RevenueFunc   func(ctx context.Context, filter domain.RevenueFilter) (*domain.RevenueReport, error)
	ExportCSVFunc func(ctx context.Context, filter domain.RevenueFilter, w io.Writer) error
}

// NewMockReportService creates a new MockReportService with default behaviors
func NewMockReportService() *MockReportService {
	return &MockReportService{}
}

// Revenue aggregates transactions
func (m *MockReportService) Revenue(ctx context.Context, filter domain.RevenueFilter) (*domain.RevenueReport, error) {
	if m.RevenueFunc != nil {
		return m.RevenueFunc(ctx, filter)
	}
	// Default behavior: empty report
	return &domain.RevenueReport{}, nil
}

// ExportCSV writes a CSV export
func (m *MockReportService) ExportCSV(ctx context.Context, filter domain.RevenueFilter, w io.Writer) error {
	if m.ExportCSVFunc != nil {
		return m.ExportCSVFunc(ctx, filter, w)
	}
	// Default behavior: empty export
	return nil
}

// Compile-time interface compliance verification
var _ domain.ReportService = (*MockReportService)(nil)
