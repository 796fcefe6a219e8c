package lock

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const sweepLockKey = "travel-booking:sweep:leader"

// Deletes the key only while it still holds our token, so an expired lock
// taken over by another instance is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock is a single-key lease: SET NX PX with a random token.
type RedisLock struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

func NewRedisLock(client redis.Cmdable, key string, ttl time.Duration) *RedisLock {
	return &RedisLock{client: client, key: key, ttl: ttl}
}

func NewSweepLock(client *redis.Client, cfg config.SweepConfig) *RedisLock {
	return NewRedisLock(client, sweepLockKey, cfg.LockTTL)
}

func (l *RedisLock) TryLock(ctx context.Context) (func(context.Context) error, bool, error) {
	token := rand.Text()
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, errs.Wrapf(err, "acquire lock %s", l.key)
	}
	if !ok {
		return nil, false, nil
	}

	unlock := func(ctx context.Context) error {
		released, err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Int()
		if err != nil {
			return errs.Wrapf(err, "release lock %s", l.key)
		}
		if released == 0 {
			slog.WarnContext(ctx, "lock expired before release", "key", l.key)
		}
		return nil
	}
	return unlock, true, nil
}

// NewClient connects and pings with a short timeout.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "ping redis at %s", cfg.Addr)
	}
	return client, nil
}
