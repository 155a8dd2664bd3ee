package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifrizal16/sahasrara/domain"
)

func setupLockoutService(t *testing.T) (domain.LockoutService, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewLockoutService(client, LockoutConfig{
		MaxAttempts: 3,
		Window:      15 * time.Minute,
	})
	return svc, mr
}

func TestLockoutService_UnderLimit(t *testing.T) {
	svc, _ := setupLockoutService(t)
	ctx := context.Background()

	require.NoError(t, svc.Check(ctx, "10.0.0.1"))

	require.NoError(t, svc.RecordFailure(ctx, "10.0.0.1"))
	require.NoError(t, svc.RecordFailure(ctx, "10.0.0.1"))

	assert.NoError(t, svc.Check(ctx, "10.0.0.1"))
}

func TestLockoutService_AtLimit(t *testing.T) {
	svc, _ := setupLockoutService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RecordFailure(ctx, "10.0.0.1"))
	}

	assert.ErrorIs(t, svc.Check(ctx, "10.0.0.1"), domain.ErrTooManyAttempts)

	// Other clients are unaffected.
	assert.NoError(t, svc.Check(ctx, "10.0.0.2"))
}

func TestLockoutService_Clear(t *testing.T) {
	svc, _ := setupLockoutService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RecordFailure(ctx, "10.0.0.1"))
	}
	require.ErrorIs(t, svc.Check(ctx, "10.0.0.1"), domain.ErrTooManyAttempts)

	require.NoError(t, svc.Clear(ctx, "10.0.0.1"))
	assert.NoError(t, svc.Check(ctx, "10.0.0.1"))
}

func TestLockoutService_WindowExpires(t *testing.T) {
	svc, mr := setupLockoutService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RecordFailure(ctx, "10.0.0.1"))
	}
	require.ErrorIs(t, svc.Check(ctx, "10.0.0.1"), domain.ErrTooManyAttempts)

	mr.FastForward(16 * time.Minute)

	assert.NoError(t, svc.Check(ctx, "10.0.0.1"))
}
