package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arifrizal16/sahasrara/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	accountRepo domain.AccountRepository
	pinSvc      domain.PinService
	codec       domain.SessionCodec
	lockoutSvc  domain.LockoutService
	config      SessionTTLConfig
	now         func() time.Time
}

type SessionTTLConfig struct {
	TTL         time.Duration
	RememberTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo domain.AccountRepository,
	pinSvc domain.PinService,
	codec domain.SessionCodec,
	lockoutSvc domain.LockoutService,
	config SessionTTLConfig,
) domain.AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		pinSvc:      pinSvc,
		codec:       codec,
		lockoutSvc:  lockoutSvc,
		config:      config,
		now:         time.Now,
	}
}

// Login implements domain.AuthService. PINs are stored hashed, so the match
// walks the active accounts; the account set is a handful of staff rows.
func (s *AuthServiceImpl) Login(ctx context.Context, pin string, rememberMe bool, clientKey string) (*domain.LoginResult, error) {
	if err := s.lockoutSvc.Check(ctx, clientKey); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	var match *domain.Account
	for _, account := range accounts {
		if s.pinSvc.Verify(account.PINHash, pin) {
			match = account
			break
		}
	}

	if match == nil {
		if err := s.lockoutSvc.RecordFailure(ctx, clientKey); err != nil {
			return nil, fmt.Errorf("failed to record login failure: %w", err)
		}
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.lockoutSvc.Clear(ctx, clientKey); err != nil {
		return nil, fmt.Errorf("failed to clear login failures: %w", err)
	}

	ttl := s.config.TTL
	if rememberMe {
		ttl = s.config.RememberTTL
	}

	now := s.now()
	session := &domain.Session{
		Authenticated: true,
		UserID:        match.ID,
		UserName:      match.Name,
		UserRole:      match.Role,
		IssuedAt:      now,
		ExpiresAt:     now.Add(ttl),
		RememberMe:    rememberMe,
	}

	token, err := s.codec.Encode(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	return &domain.LoginResult{
		Account: match,
		Session: session,
		Token:   token,
	}, nil
}

// ChangePIN implements domain.AuthService. Format and no-op checks run before
// any credential lookup.
func (s *AuthServiceImpl) ChangePIN(ctx context.Context, currentPIN, newPIN string) (*domain.Account, string, error) {
	if !domain.ValidPINFormat(currentPIN) || !domain.ValidPINFormat(newPIN) {
		return nil, "", domain.ErrPINFormat
	}
	if currentPIN == newPIN {
		return nil, "", domain.ErrPINUnchanged
	}

	accounts, err := s.accountRepo.FindActive(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load accounts: %w", err)
	}

	var match *domain.Account
	for _, account := range accounts {
		if s.pinSvc.Verify(account.PINHash, currentPIN) {
			match = account
			break
		}
	}
	if match == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := s.pinSvc.Hash(newPIN)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash new PIN: %w", err)
	}

	if err := s.accountRepo.UpdatePIN(ctx, match.ID, hash); err != nil {
		return nil, "", fmt.Errorf("failed to update PIN: %w", err)
	}

	return match, domain.MaskPIN(newPIN), nil
}

// CheckSession implements domain.AuthService
func (s *AuthServiceImpl) CheckSession(token string) (*domain.Session, error) {
	session, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	if !session.Authenticated {
		return nil, domain.ErrSessionInvalid
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}
