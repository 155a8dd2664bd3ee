package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/arifrizal16/sahasrara/domain"
)

// PinServiceImpl implements domain.PinService
type PinServiceImpl struct {
	cost int
}

// NewPinService creates a new PIN service
func NewPinService() domain.PinService {
	return &PinServiceImpl{
		cost: bcrypt.DefaultCost,
	}
}

// Hash implements domain.PinService
func (p *PinServiceImpl) Hash(pin string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PinService
func (p *PinServiceImpl) Verify(pinHash, pin string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(pin))
	return err == nil
}
