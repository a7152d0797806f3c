package middleware

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/labourlink-api/internal/constants"
	apierrors "github.com/yukikurage/labourlink-api/internal/errors"
)

const (
	chatRateLimitMessage = "Messages are sent too frequently"
	maxInMemoryBuckets   = 10000
)

// Limiter decides whether one more event under key fits in the window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) bool
}

// RateLimiter is a fixed-window limiter kept in process memory. It is used when
// Redis is unavailable, so limits are per instance.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
	now     func() time.Time
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*rateBucket),
		now:     time.Now,
	}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, ok := r.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		if len(r.buckets) >= maxInMemoryBuckets {
			r.pruneLocked(now)
		}
		r.buckets[key] = &rateBucket{count: 1, windowEnd: now.Add(window)}
		return true
	}
	if bucket.count >= limit {
		return false
	}
	bucket.count++
	return true
}

func (r *RateLimiter) pruneLocked(now time.Time) {
	for key, bucket := range r.buckets {
		if now.After(bucket.windowEnd) {
			delete(r.buckets, key)
		}
	}
}

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter shares fixed windows across instances through Redis. Redis
// errors let the request through.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RateLimitTimeout)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		log.Printf("rate limit: redis error for %s: %v", key, err)
		return true
	}
	return allowed == 1
}

// NewChatLimiter picks the Redis limiter when client answers a ping and the
// in-memory limiter otherwise.
func NewChatLimiter(ctx context.Context, client *redis.Client) Limiter {
	if client != nil {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		err := client.Ping(pingCtx).Err()
		if err == nil {
			return NewRedisLimiter(client)
		}
		log.Printf("Warning: Redis unavailable for chat rate limiting, using in-memory limiter: %v", err)
	}
	return NewRateLimiter()
}

// ChatRateLimit limits how fast one user can post into one application's
// conversation. It must run after RequireAuth and RequireUUIDParam(param).
func ChatRateLimit(limiter Limiter, param string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			c.Next()
			return
		}
		applicationID, ok := UUIDParam(c, param)
		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("chat:%s:%s", applicationID, userID)
		if !limiter.Allow(c.Request.Context(), key, limit, window) {
			apierrors.TooManyRequests(c, chatRateLimitMessage)
			return
		}

		c.Next()
	}
}
