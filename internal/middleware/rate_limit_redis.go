package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const rateLimitKeyPrefix = "realestate:ratelimit"

// RedisRateLimiterStore is a fixed-window counter shared through redis.
// It satisfies echo's RateLimiterStore.
type RedisRateLimiterStore struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *zerolog.Logger

	timeout time.Duration
	now     func() time.Time
}

func NewRedisRateLimiterStore(client *redis.Client, limit int, window time.Duration, logger *zerolog.Logger) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client:  client,
		limit:   limit,
		window:  window,
		logger:  logger,
		timeout: 100 * time.Millisecond,
		now:     time.Now,
	}
}

// Allow counts the request in the current window. A redis failure lets the
// request through.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	window := s.now().Truncate(s.window)
	key := fmt.Sprintf("%s:%s:%d", rateLimitKeyPrefix, identifier, window.Unix())

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error().Err(err).Str("identifier", identifier).Msg("rate limit store unavailable")
		return true, nil
	}

	return incr.Val() <= int64(s.limit), nil
}
