package ratelimit

import (
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"droscher.com/Vinlogg/configs"
	"droscher.com/Vinlogg/pkg/auth"
)

const (
	keyPrefix         = "vinlogg:ratelimit"
	rejectedMessage   = "För många förfrågningar, försök igen senare"
	refillInterval    = time.Minute
	bucketIdleTimeout = time.Hour
)

// tokenBucket refills whole tokens per elapsed interval and takes one per call.
// It returns {allowed, remaining, retry_after_ms}.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'refilled_at')
local tokens = tonumber(state[1])
local refilled_at = tonumber(state[2])
if tokens == nil or refilled_at == nil then
  tokens = capacity
  refilled_at = now_ms
end

local intervals = math.floor(math.max(0, now_ms - refilled_at) / interval_ms)
if intervals > 0 and refill > 0 then
  tokens = math.min(capacity, tokens + intervals * refill)
  refilled_at = refilled_at + intervals * interval_ms
end

local allowed = 0
local retry_ms = 0
if tokens > 0 then
  allowed = 1
  tokens = tokens - 1
else
  retry_ms = math.max(0, interval_ms - (now_ms - refilled_at))
end

redis.call('HSET', key, 'tokens', tokens, 'refilled_at', refilled_at)
redis.call('EXPIRE', key, ttl)
return {allowed, tokens, retry_ms}
`)

type Limiter struct {
	client   redis.Scripter
	capacity int
	refill   int
	logger   *zap.Logger
	now      func() time.Time
}

// NewLimiter returns nil when client is nil, which disables limiting.
func NewLimiter(client redis.Scripter, conf configs.RateLimit, logger *zap.Logger) *Limiter {
	if client == nil {
		return nil
	}

	return &Limiter{
		client:   client,
		capacity: conf.Capacity,
		refill:   conf.RefillPerMinute,
		logger:   logger,
		now:      time.Now,
	}
}

func NewRedisClient(conf configs.Redis) *redis.Client {
	if conf.Addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
}

// Middleware limits calls per user and route. Redis failures let the request through.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	if l == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := bucketKey(r)

		result, err := tokenBucket.Run(r.Context(), l.client, []string{key},
			l.now().UnixMilli(), l.capacity, l.refill, refillInterval.Milliseconds(),
			int64(bucketIdleTimeout/time.Second)).Int64Slice()
		if err != nil || len(result) != 3 {
			l.logger.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			next.ServeHTTP(w, r)

			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.capacity))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(result[1], 10))

		if result[0] != 1 {
			retryAfter := int(math.Ceil(float64(result[2]) / 1000.0))
			l.logger.Info("rate limited", zap.String("key", key), zap.Int("retry_after", retryAfter))

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": rejectedMessage})

			return
		}

		next.ServeHTTP(w, r)
	})
}

func bucketKey(r *http.Request) string {
	if user, err := auth.UserFromContext(r.Context()); err == nil {
		return fmt.Sprintf("%s:user:%s:%s", keyPrefix, user.UUID, r.URL.Path)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return fmt.Sprintf("%s:ip:%s:%s", keyPrefix, host, r.URL.Path)
}
