package checkin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounterStoreCountsWithinWindow(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCounterStore()

	count, resetAt, err := store.Incr(ctx, "token:abc", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.True(t, resetAt.After(time.Now()))

	count, _, err = store.Incr(ctx, "token:abc", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// คนละ key นับแยกกัน
	count, _, err = store.Incr(ctx, "token:xyz", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryCounterStoreWindowExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCounterStore()

	// หน้าต่างสั้นมากเพื่อให้หมดอายุทันทีในเทสต์
	_, _, err := store.Incr(ctx, "token:abc", time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	count, _, err := store.Incr(ctx, "token:abc", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "หน้าต่างใหม่ต้องเริ่มนับจากหนึ่ง")
}

func TestRateLimiterRefusesOverLimit(t *testing.T) {
	ctx := context.Background()
	limiter := NewRateLimiter(nil) // ไม่มี Redis → ใช้ in-process

	limit := 5
	for i := 0; i < limit; i++ {
		res := limiter.Check(ctx, "ip:1.2.3.4", limit, time.Minute)
		assert.True(t, res.Allowed, "request %d ต้องยังผ่าน", i+1)
		assert.Equal(t, limit-i-1, res.Remaining)
	}

	res := limiter.Check(ctx, "ip:1.2.3.4", limit, time.Minute)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.GreaterOrEqual(t, res.RetryAfter(), 1)
}

// failingCounterStore จำลอง Redis ที่ล่มตลอด
type failingCounterStore struct{}

func (failingCounterStore) Incr(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("connection refused")
}

func TestRateLimiterFallsBackWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	limiter := NewRateLimiter(failingCounterStore{})

	// store หลักพัง → ต้อง fallback เป็น in-process และยังบังคับ limit ได้
	limit := 3
	for i := 0; i < limit; i++ {
		res := limiter.Check(ctx, "token:abc", limit, time.Minute)
		assert.True(t, res.Allowed)
	}

	res := limiter.Check(ctx, "token:abc", limit, time.Minute)
	assert.False(t, res.Allowed)
}

func TestRateLimitResultRetryAfterNeverBelowOne(t *testing.T) {
	past := RateLimitResult{ResetAt: time.Now().Add(-time.Minute)}
	assert.Equal(t, 1, past.RetryAfter())

	future := RateLimitResult{ResetAt: time.Now().Add(30 * time.Second)}
	retry := future.RetryAfter()
	assert.GreaterOrEqual(t, retry, 1)
	assert.LessOrEqual(t, retry, 30)
}
