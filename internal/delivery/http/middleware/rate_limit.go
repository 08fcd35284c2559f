package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"jobify-backend/internal/delivery/http/response"
	"jobify-backend/internal/domain"
	"jobify-backend/pkg/logger"
	"jobify-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to reject requests when Redis is unavailable
	FailClosed bool
}

// UploadRateLimitConfig limits upload endpoints to limit requests per window per client IP.
func UploadRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "jobify:rl:upload:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// RateLimiter counts requests per key in Redis when a client is given, and
// in process memory otherwise or when Redis fails open.
type RateLimiter struct {
	cfg   RateLimitConfig
	redis *goredis.Client
	now   func() time.Time

	entries   sync.Map
	pruneMu   sync.Mutex
	nextPrune time.Time
}

func NewRateLimiter(cfg RateLimitConfig, client *goredis.Client) *RateLimiter {
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	return &RateLimiter{cfg: cfg, redis: client, now: time.Now}
}

// Middleware rejects requests over the limit with 429.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.cfg.KeyPrefix + l.cfg.KeyFunc(c)
		now := l.now()

		count, resetAt, err := l.hit(c.Request.Context(), key, now)
		if err != nil {
			logger.Log.Error("Rate limit backend error",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"error", err,
			)
			if l.cfg.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.")
				c.Abort()
				return
			}
			count, resetAt = l.hitMemory(key, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.cfg.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > l.cfg.Limit {
			retryAfter := int(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logRateLimitTriggered(c)
			response.Error(c, http.StatusTooManyRequests, "Too many uploads. Please try again later.")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(l.cfg.Limit-count))
		c.Next()
	}
}

func (l *RateLimiter) hit(ctx context.Context, key string, now time.Time) (int, time.Time, error) {
	if l.redis == nil {
		count, resetAt := l.hitMemory(key, now)
		return count, resetAt, nil
	}
	return l.hitRedis(ctx, key, now)
}

// hitRedis increments the counter atomically with a Lua script
func (l *RateLimiter) hitRedis(ctx context.Context, key string, now time.Time) (int, time.Time, error) {
	ttlSeconds := int(l.cfg.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := l.redis.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), now.Add(time.Duration(ttl) * time.Second), nil
}

func (l *RateLimiter) hitMemory(key string, now time.Time) (int, time.Time) {
	l.prune(now)

	entryI, _ := l.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(l.cfg.Window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(l.cfg.Window)
	}
	entry.count++
	return entry.count, entry.resetAt
}

// prune drops expired in-memory counters at most once per window.
func (l *RateLimiter) prune(now time.Time) {
	l.pruneMu.Lock()
	if now.Before(l.nextPrune) {
		l.pruneMu.Unlock()
		return
	}
	l.nextPrune = now.Add(l.cfg.Window)
	l.pruneMu.Unlock()

	l.entries.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			l.entries.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}

// logRateLimitTriggered records the rejected request as a security event
func logRateLimitTriggered(c *gin.Context) {
	security.DefaultLogger().LogRateLimitTriggered(
		c.Request.Context(),
		c.ClientIP(),
		c.GetHeader("User-Agent"),
		c.GetString(string(domain.KeyRequestID)),
		c.FullPath(),
	)
}
