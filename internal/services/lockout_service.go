package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arifrizal16/sahasrara/domain"
)

// LockoutServiceImpl implements domain.LockoutService using Redis counters.
// Each failed login bumps a per-client counter that expires with the window;
// once the counter reaches the limit, further attempts are refused until the
// key ages out.
type LockoutServiceImpl struct {
	redisClient *redis.Client
	config      LockoutConfig
}

type LockoutConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// NewLockoutService creates a new Redis-based lockout service
func NewLockoutService(redisClient *redis.Client, config LockoutConfig) domain.LockoutService {
	return &LockoutServiceImpl{
		redisClient: redisClient,
		config:      config,
	}
}

func (s *LockoutServiceImpl) attemptsKey(key string) string {
	return fmt.Sprintf("login:att:%s", key)
}

// Check implements domain.LockoutService
func (s *LockoutServiceImpl) Check(ctx context.Context, key string) error {
	attempts, err := s.redisClient.Get(ctx, s.attemptsKey(key)).Int64()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read attempts counter: %w", err)
	}
	if attempts >= int64(s.config.MaxAttempts) {
		return domain.ErrTooManyAttempts
	}
	return nil
}

// RecordFailure implements domain.LockoutService
func (s *LockoutServiceImpl) RecordFailure(ctx context.Context, key string) error {
	attempts, err := s.redisClient.Incr(ctx, s.attemptsKey(key)).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}
	if attempts == 1 {
		if err := s.redisClient.Expire(ctx, s.attemptsKey(key), s.config.Window).Err(); err != nil {
			return fmt.Errorf("failed to set attempts window: %w", err)
		}
	}
	return nil
}

// Clear implements domain.LockoutService
func (s *LockoutServiceImpl) Clear(ctx context.Context, key string) error {
	return s.redisClient.Del(ctx, s.attemptsKey(key)).Err()
}
