package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "idempotency:"

// Снимаем ключ, только если он все еще принадлежит владельцу.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker держит in-flight блокировку ключа идемпотентности на время запроса.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl}
}

func (l *RedisLocker) Acquire(ctx context.Context, key, owner string) (bool, error) {
	ok, err := l.client.SetNX(ctx, keyPrefix+key, owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

func (l *RedisLocker) Release(ctx context.Context, key, owner string) error {
	if err := releaseScript.Run(ctx, l.client, []string{keyPrefix + key}, owner).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("redis release: %w", err)
	}
	return nil
}

// Noop используется, когда Redis не настроен: остается только уникальный индекс в БД.
type Noop struct{}

func (Noop) Acquire(context.Context, string, string) (bool, error) { return true, nil }

func (Noop) Release(context.Context, string, string) error { return nil }
