package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arifrizal16/sahasrara/domain"
)

// TransactionRepositoryImpl implements domain.TransactionRepository using GORM
type TransactionRepositoryImpl struct {
	db *gorm.DB
}

// DBTransaction represents the database model for Transaction (with GORM tags)
type DBTransaction struct {
	ID           string    `gorm:"primaryKey;size:36"`
	BabyName     string    `gorm:"index;size:255"`
	Age          string    `gorm:"size:64"`
	Sex          string    `gorm:"size:8"`
	WeightKg     string    `gorm:"size:32"`
	LengthCm     string    `gorm:"size:32"`
	GuardianName string    `gorm:"index;size:255"`
	Address      string    `gorm:"size:512"`
	Treatment    string    `gorm:"index;size:64"`
	Cost         int64     `gorm:"not null"`
	Note         string    `gorm:"size:1024"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBTransaction) TableName() string {
	return "transactions"
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

// Create implements domain.TransactionRepository
func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *domain.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	dbTx := r.domainToDB(tx)
	if err := r.db.WithContext(ctx).Create(dbTx).Error; err != nil {
		return err
	}
	tx.CreatedAt = dbTx.CreatedAt
	tx.UpdatedAt = dbTx.UpdatedAt
	return nil
}

// FindByID implements domain.TransactionRepository
func (r *TransactionRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var dbTx DBTransaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbTx).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbTx), nil
}

// Update implements domain.TransactionRepository. Last write wins; there is
// no version check on the row.
func (r *TransactionRepositoryImpl) Update(ctx context.Context, tx *domain.Transaction) error {
	dbTx := r.domainToDB(tx)
	if err := r.db.WithContext(ctx).Save(dbTx).Error; err != nil {
		return err
	}
	tx.UpdatedAt = dbTx.UpdatedAt
	return nil
}

// Delete implements domain.TransactionRepository
func (r *TransactionRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBTransaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// List implements domain.TransactionRepository
func (r *TransactionRepositoryImpl) List(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 50
	}

	q := r.db.WithContext(ctx).Model(&DBTransaction{})
	q = applyListFilter(q, filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var dbTxs []DBTransaction
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&dbTxs).Error
	if err != nil {
		return nil, err
	}

	items := make([]*domain.Transaction, 0, len(dbTxs))
	for i := range dbTxs {
		items = append(items, r.dbToDomain(&dbTxs[i]))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &domain.TransactionPage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// FindInRange implements domain.TransactionRepository
func (r *TransactionRepositoryImpl) FindInRange(ctx context.Context, filter domain.RevenueFilter) ([]*domain.Transaction, error) {
	q := r.db.WithContext(ctx).Model(&DBTransaction{})
	if !filter.Start.IsZero() {
		q = q.Where("created_at >= ?", filter.Start)
	}
	if !filter.End.IsZero() {
		// End names a day; include the whole of it.
		q = q.Where("created_at < ?", filter.End.Add(24*time.Hour))
	}
	if filter.Treatment != "" {
		q = q.Where("treatment = ?", filter.Treatment)
	}

	var dbTxs []DBTransaction
	if err := q.Order("created_at ASC").Find(&dbTxs).Error; err != nil {
		return nil, err
	}

	items := make([]*domain.Transaction, 0, len(dbTxs))
	for i := range dbTxs {
		items = append(items, r.dbToDomain(&dbTxs[i]))
	}
	return items, nil
}

// applyListFilter adds search and treatment conditions. LOWER/LIKE keeps the
// case-insensitive search portable between Postgres and the sqlite used in
// tests.
func applyListFilter(q *gorm.DB, filter domain.TransactionFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(baby_name) LIKE ? OR LOWER(guardian_name) LIKE ? OR LOWER(address) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Treatment != "" {
		q = q.Where("treatment = ?", filter.Treatment)
	}
	return q
}

// domainToDB converts domain transaction to database transaction
func (r *TransactionRepositoryImpl) domainToDB(tx *domain.Transaction) *DBTransaction {
	return &DBTransaction{
		ID:           tx.ID,
		BabyName:     tx.BabyName,
		Age:          tx.Age,
		Sex:          string(tx.Sex),
		WeightKg:     tx.WeightKg,
		LengthCm:     tx.LengthCm,
		GuardianName: tx.GuardianName,
		Address:      tx.Address,
		Treatment:    string(tx.Treatment),
		Cost:         tx.Cost,
		Note:         tx.Note,
		CreatedAt:    tx.CreatedAt,
	}
}

// dbToDomain converts database transaction to domain transaction
func (r *TransactionRepositoryImpl) dbToDomain(dbTx *DBTransaction) *domain.Transaction {
	return &domain.Transaction{
		ID:           dbTx.ID,
		BabyName:     dbTx.BabyName,
		Age:          dbTx.Age,
		Sex:          domain.Sex(dbTx.Sex),
		WeightKg:     dbTx.WeightKg,
		LengthCm:     dbTx.LengthCm,
		GuardianName: dbTx.GuardianName,
		Address:      dbTx.Address,
		Treatment:    domain.TreatmentType(dbTx.Treatment),
		Cost:         dbTx.Cost,
		Note:         dbTx.Note,
		CreatedAt:    dbTx.CreatedAt,
		UpdatedAt:    dbTx.UpdatedAt,
	}
}
