package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/arifrizal16/sahasrara/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255"`
	Email     string    `gorm:"uniqueIndex;size:255"`
	PINHash   string    `gorm:"column:pin_hash;size:96"`
	Role      string    `gorm:"index;size:32"`
	IsActive  bool      `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		return err
	}
	account.ID = dbAccount.ID
	return nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindActive implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindActive(ctx context.Context) ([]*domain.Account, error) {
	var dbAccounts []DBAccount
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&dbAccounts).Error
	if err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(dbAccounts))
	for i := range dbAccounts {
		accounts = append(accounts, r.dbToDomain(&dbAccounts[i]))
	}
	return accounts, nil
}

// List implements domain.AccountRepository
func (r *AccountRepositoryImpl) List(ctx context.Context) ([]*domain.Account, error) {
	var dbAccounts []DBAccount
	err := r.db.WithContext(ctx).Order("id").Find(&dbAccounts).Error
	if err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(dbAccounts))
	for i := range dbAccounts {
		accounts = append(accounts, r.dbToDomain(&dbAccounts[i]))
	}
	return accounts, nil
}

// UpdatePIN implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdatePIN(ctx context.Context, id uint, pinHash string) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).Update("pin_hash", pinHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Count implements domain.AccountRepository
func (r *AccountRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBAccount{}).Count(&count).Error
	return count, err
}

// domainToDB converts domain account to database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:       account.ID,
		Name:     account.Name,
		Email:    account.Email,
		PINHash:  account.PINHash,
		Role:     account.Role,
		IsActive: account.IsActive,
	}
}

// dbToDomain converts database account to domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:        dbAccount.ID,
		Name:      dbAccount.Name,
		Email:     dbAccount.Email,
		PINHash:   dbAccount.PINHash,
		Role:      dbAccount.Role,
		IsActive:  dbAccount.IsActive,
		CreatedAt: dbAccount.CreatedAt,
		UpdatedAt: dbAccount.UpdatedAt,
	}
}
