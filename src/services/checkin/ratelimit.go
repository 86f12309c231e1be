package checkin

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ค่า limit สำหรับ self check-in ต่อหน้าต่าง 5 นาที
// ต่อ IP หยาบกว่า (หลายคนใช้ wifi งานเดียวกัน) ต่อ token เข้มกว่า
const (
	RateLimitWindow = 5 * time.Minute
	IPLimit         = 300
	TokenLimit      = 30
)

// RateLimitResult ผลการตรวจหนึ่ง key
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// RetryAfter จำนวนวินาทีที่ client ควรรอก่อนลองใหม่
func (r RateLimitResult) RetryAfter() int {
	sec := int(time.Until(r.ResetAt).Seconds())
	if sec < 1 {
		sec = 1
	}
	return sec
}

// CounterStore ตัวนับต่อ key แบบ fixed window: request แรกของหน้าต่าง
// ตั้ง resetAt = now + window, request ถัดไปเพิ่มตัวนับจนหน้าต่างหมดอายุ
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

// RedisCounterStore ตัวนับใช้ร่วมกันได้หลาย instance
type RedisCounterStore struct {
	Client *redis.Client
}

func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if s.Client == nil {
		return 0, time.Time{}, fmt.Errorf("redis client not initialized")
	}

	fullKey := "ratelimit:" + key
	count, err := s.Client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, time.Time{}, err
	}
	if count == 1 {
		// request แรกของหน้าต่าง — ตั้งอายุ key
		if err := s.Client.Expire(ctx, fullKey, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
	}

	ttl, err := s.Client.PTTL(ctx, fullKey).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	return count, time.Now().Add(ttl), nil
}

type memoryCounter struct {
	count   int64
	resetAt time.Time
}

// MemoryCounterStore ตัวนับใน process เดียว ใช้เป็น fallback เมื่อ Redis ล่ม
// ข้อจำกัดที่ยอมรับ: หลาย instance จะนับแยกกัน (undercount รวม) —
// เพียงพอสำหรับกันการเดา token แบบ best-effort
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters map[string]*memoryCounter
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{counters: make(map[string]*memoryCounter)}
}

func (s *MemoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c, ok := s.counters[key]
	if !ok || now.After(c.resetAt) {
		c = &memoryCounter{count: 0, resetAt: now.Add(window)}
		s.counters[key] = c
	}
	c.count++
	return c.count, c.resetAt, nil
}

// RateLimiter ตรวจ limit ต่อ key ผ่าน CounterStore ที่ inject เข้ามา
// ถ้า store หลัก (Redis) ใช้ไม่ได้ จะ fallback เป็น in-process เงียบ ๆ
// แล้ว log warning — ไม่ปฏิเสธ request เพราะ Redis ล่ม
type RateLimiter struct {
	store    CounterStore
	fallback *MemoryCounterStore
}

func NewRateLimiter(store CounterStore) *RateLimiter {
	return &RateLimiter{
		store:    store,
		fallback: NewMemoryCounterStore(),
	}
}

// Check นับหนึ่งครั้งให้ key แล้วตัดสินว่าเกิน limit หรือไม่
func (r *RateLimiter) Check(ctx context.Context, key string, limit int, window time.Duration) RateLimitResult {
	count, resetAt, err := r.incr(ctx, key, window)
	if err != nil {
		// ไม่ควรเกิด (fallback ไม่มี error) — ปล่อยผ่านดีกว่า block ทั้งงาน
		log.Printf("⚠️ [RateLimiter] counter failed for key=%s: %v", key, err)
		return RateLimitResult{Allowed: true, Remaining: limit, ResetAt: time.Now().Add(window)}
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return RateLimitResult{
		Allowed:   count <= int64(limit),
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}

func (r *RateLimiter) incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if r.store != nil {
		count, resetAt, err := r.store.Incr(ctx, key, window)
		if err == nil {
			return count, resetAt, nil
		}
		log.Printf("⚠️ [RateLimiter] shared counter unreachable, falling back to in-process: %v", err)
	}
	return r.fallback.Incr(ctx, key, window)
}
