package domain

import (
	"context"
	"io"
)

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id uint) (*Account, error)
	FindActive(ctx context.Context) ([]*Account, error)
	List(ctx context.Context) ([]*Account, error)
	UpdatePIN(ctx context.Context, id uint, pinHash string) error
	Count(ctx context.Context) (int64, error)
}

// TransactionRepository defines transaction data access operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	FindByID(ctx context.Context, id string) (*Transaction, error)
	Update(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TransactionFilter) (*TransactionPage, error)
	FindInRange(ctx context.Context, filter RevenueFilter) ([]*Transaction, error)
}

// PinService defines PIN hashing operations
type PinService interface {
	Hash(pin string) (string, error)
	Verify(pinHash, pin string) bool
}

// SessionCodec serializes sessions to and from the signed cookie token.
// Decode does not judge expiry; callers distinguish expired from malformed.
type SessionCodec interface {
	Encode(session *Session) (string, error)
	Decode(token string) (*Session, error)
}

// LockoutService tracks failed login attempts per client.
type LockoutService interface {
	Check(ctx context.Context, key string) error
	RecordFailure(ctx context.Context, key string) error
	Clear(ctx context.Context, key string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Login(ctx context.Context, pin string, rememberMe bool, clientKey string) (*LoginResult, error)
	ChangePIN(ctx context.Context, currentPIN, newPIN string) (*Account, string, error)
	CheckSession(token string) (*Session, error)
}

// TransactionService defines treatment record business logic
type TransactionService interface {
	Create(ctx context.Context, input *TransactionInput) (*Transaction, error)
	Update(ctx context.Context, id string, input *TransactionInput) (*Transaction, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TransactionFilter) (*TransactionPage, error)
}

// ReportService defines aggregate reporting over transactions
type ReportService interface {
	Revenue(ctx context.Context, filter RevenueFilter) (*RevenueReport, error)
	ExportCSV(ctx context.Context, filter RevenueFilter, w io.Writer) error
}
