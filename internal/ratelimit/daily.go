// Package ratelimit дневные счетчики действий пользователей в Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const counterTTL = 24 * time.Hour

// Limiter считает действия по ключу. Счетчик создается первым INCR и живет counterTTL,
// поэтому ключ должен содержать дату.
type Limiter struct {
	rdb    redis.Cmdable
	prefix string
}

func New(rdb redis.Cmdable) *Limiter {
	return &Limiter{rdb: rdb, prefix: "ratelimit:"}
}

// Allow увеличивает счетчик key и сообщает, укладывается ли действие в limit.
func (l *Limiter) Allow(ctx context.Context, key string, limit int64) (bool, error) {
	k := l.prefix + key
	count, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("[ratelimit] incr `%s`: %w", k, err)
	}
	if count == 1 {
		if err = l.rdb.Expire(ctx, k, counterTTL).Err(); err != nil {
			return false, fmt.Errorf("[ratelimit] expire `%s`: %w", k, err)
		}
	}
	return count <= limit, nil
}
