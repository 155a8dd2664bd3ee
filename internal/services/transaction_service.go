package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arifrizal16/sahasrara/domain"
)

// TransactionServiceImpl implements domain.TransactionService
type TransactionServiceImpl struct {
	txRepo domain.TransactionRepository
	now    func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txRepo domain.TransactionRepository) domain.TransactionService {
	return &TransactionServiceImpl{
		txRepo: txRepo,
		now:    time.Now,
	}
}

// Create implements domain.TransactionService
func (s *TransactionServiceImpl) Create(ctx context.Context, input *domain.TransactionInput) (*domain.Transaction, error) {
	tx, err := s.buildTransaction(input)
	if err != nil {
		return nil, err
	}

	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = s.now()
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}

// Update implements domain.TransactionService
func (s *TransactionServiceImpl) Update(ctx context.Context, id string, input *domain.TransactionInput) (*domain.Transaction, error) {
	existing, err := s.txRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.buildTransaction(input)
	if err != nil {
		return nil, err
	}
	tx.ID = existing.ID
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = existing.CreatedAt
	}

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return tx, nil
}

// Delete implements domain.TransactionService
func (s *TransactionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.txRepo.Delete(ctx, id)
}

// List implements domain.TransactionService
func (s *TransactionServiceImpl) List(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	return s.txRepo.List(ctx, filter)
}

// buildTransaction validates the raw input and maps it to a domain record.
// CreatedAt is left zero unless the client backdated the record.
func (s *TransactionServiceImpl) buildTransaction(input *domain.TransactionInput) (*domain.Transaction, error) {
	required := []string{
		input.BabyName, input.Age, input.SexCode, input.WeightKg,
		input.LengthCm, input.GuardianName, input.Address, input.Treatment,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return nil, domain.ErrMissingFields
		}
	}
	if input.Cost == nil || input.Cost == "" {
		return nil, domain.ErrMissingFields
	}

	cost, err := parseCost(input.Cost)
	if err != nil {
		return nil, err
	}

	treatment := domain.TreatmentType(input.Treatment)
	if !treatment.Valid() {
		return nil, domain.ErrInvalidTreatment
	}

	tx := &domain.Transaction{
		BabyName:     input.BabyName,
		Age:          input.Age,
		Sex:          domain.SexFromCode(input.SexCode),
		WeightKg:     input.WeightKg,
		LengthCm:     input.LengthCm,
		GuardianName: input.GuardianName,
		Address:      input.Address,
		Treatment:    treatment,
		Cost:         cost,
		Note:         input.Note,
	}

	if input.Date != "" {
		created, err := parseDate(input.Date)
		if err != nil {
			return nil, err
		}
		tx.CreatedAt = created
	}

	return tx, nil
}

// parseCost accepts the cost as a JSON string or number and returns a
// non-negative integer amount.
func parseCost(v any) (int64, error) {
	var cost int64
	switch c := v.(type) {
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(c), 10, 64)
		if err != nil {
			return 0, domain.ErrInvalidCost
		}
		cost = parsed
	case float64:
		cost = int64(c)
	case json.Number:
		parsed, err := c.Int64()
		if err != nil {
			return 0, domain.ErrInvalidCost
		}
		cost = parsed
	case int:
		cost = int64(c)
	case int64:
		cost = c
	default:
		return 0, domain.ErrInvalidCost
	}
	if cost < 0 {
		return 0, domain.ErrInvalidCost
	}
	return cost, nil
}

// parseDate accepts a plain date or an RFC3339 timestamp.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidDate
}
