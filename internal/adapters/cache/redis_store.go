package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	"github.com/go-redis/redis/v8"
)

// RedisStore keeps rate slots in Redis as JSON strings without expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing client. prefix is prepended to every slot key.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisClient connects to addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

var _ portsrepo.RateSlotStore = (*RedisStore)(nil)

// GetCachedRate returns the slot content or apperrors.ErrNotFound.
// A slot holding a bare number (no pair tag) is treated as empty.
func (s *RedisStore) GetCachedRate(ctx context.Context, key string) (*domain.CachedRate, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading rate slot %s: %w", apperrors.ErrPersistence, key, err)
	}

	var rate domain.CachedRate
	if err := json.Unmarshal(raw, &rate); err != nil || rate.Pair.From.IsZero() || rate.Pair.To.IsZero() {
		return nil, apperrors.ErrNotFound
	}
	return &rate, nil
}

// SetCachedRate overwrites the slot.
func (s *RedisStore) SetCachedRate(ctx context.Context, key string, rate domain.CachedRate) error {
	raw, err := json.Marshal(rate)
	if err != nil {
		return fmt.Errorf("%w: encoding rate slot %s: %w", apperrors.ErrPersistence, key, err)
	}
	if err := s.client.Set(ctx, s.prefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: writing rate slot %s: %w", apperrors.ErrPersistence, key, err)
	}
	return nil
}
