package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	redislib "github.com/redis/go-redis/v9"
)

// slidingWindow trims the sorted set to the window, then records the hit when
// there is room. Returns {allowed, count, oldest score}.
var slidingWindow = redislib.NewScript(`
local key    = KEYS[1]
local now    = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit  = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
if count >= limit then
  local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
  return {0, count, tonumber(oldest[2]) or now}
end
redis.call('ZADD', key, now, member)
redis.call('PEXPIRE', key, window)
return {1, count + 1, now}
`)

// RedisLimiter shares the sliding log across instances through a sorted set
// per key.
type RedisLimiter struct {
	client *redislib.Client
	cfg    Config
	prefix string
}

func NewRedisLimiter(client *redislib.Client, cfg Config, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "portfolio:ratelimit:"
	}
	return &RedisLimiter{client: client, cfg: cfg, prefix: prefix}
}

var _ Limiter = (*RedisLimiter)(nil)

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := time.Now().UnixMilli()
	window := l.cfg.Window.Milliseconds()
	member := strconv.FormatInt(now, 10) + "-" + uuid.NewString()

	res, err := slidingWindow.Run(ctx, l.client,
		[]string{l.prefix + key},
		now, window, l.cfg.Limit, member,
	).Int64Slice()
	if err != nil {
		return Decision{}, errors.Wrap(err, "rate limit script")
	}
	if len(res) != 3 {
		return Decision{}, errors.Errorf("rate limit script returned %d values", len(res))
	}

	if res[0] == 0 {
		retry := time.Duration(res[2]+window-now) * time.Millisecond
		return Decision{Allowed: false, RetryAfter: max(retry, 0)}, nil
	}
	return Decision{Allowed: true, Remaining: max(l.cfg.Limit-int(res[1]), 0)}, nil
}
