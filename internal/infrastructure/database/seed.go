package database

import (
	"context"
	"fmt"

	"github.com/arifrizal16/sahasrara/domain"
)

// SeedAccounts creates the default staff accounts when the accounts table is
// empty. The admin PIN comes from configuration (SAHASRARA_PIN); the other
// defaults match the original deployment.
func SeedAccounts(ctx context.Context, repo domain.AccountRepository, pins domain.PinService, adminPIN string) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		name  string
		email string
		pin   string
		role  string
	}{
		{"Admin User", "admin@sahasrara.com", adminPIN, domain.RoleAdmin},
		{"Staff User", "staff@sahasrara.com", "5678", domain.RoleStaff},
		{"Owner User", "owner@sahasrara.com", "9999", domain.RoleOwner},
	}

	for _, d := range defaults {
		hash, err := pins.Hash(d.pin)
		if err != nil {
			return fmt.Errorf("failed to hash seed PIN: %w", err)
		}
		account := &domain.Account{
			Name:     d.name,
			Email:    d.email,
			PINHash:  hash,
			Role:     d.role,
			IsActive: true,
		}
		if err := repo.Create(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", d.email, err)
		}
	}
	return nil
}
