// Package session хранит состояние многошаговых действий пользователей в Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/go-redis/redis/v8"
)

const DefaultTTL = 30 * time.Minute

// RedisStore состояние хранится JSON строкой под ключом interaction:{userID} и истекает через ttl
// после последнего сохранения.
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(userID int64) string {
	return fmt.Sprintf("interaction:%d", userID)
}

// Get возвращает сохраненное состояние или domain.ErrRecordNotFound.
func (s *RedisStore) Get(ctx context.Context, userID int64) (*domain.Interaction, error) {
	raw, err := s.rdb.Get(ctx, key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("[session] get: %w", err)
	}
	var state domain.Interaction
	if err = json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("[session] decode state of user %d: %w", userID, err)
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, userID int64, interaction domain.Interaction) error {
	payload, err := json.Marshal(interaction)
	if err != nil {
		return fmt.Errorf("[session] encode: %w", err)
	}
	if err = s.rdb.Set(ctx, key(userID), string(payload), s.ttl).Err(); err != nil {
		return fmt.Errorf("[session] set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID int64) error {
	if err := s.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("[session] delete: %w", err)
	}
	return nil
}
