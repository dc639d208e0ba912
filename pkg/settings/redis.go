package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix prefixes every selection key.
const DefaultRedisPrefix = "googlefonts:settings"

// RedisStore keeps selections in Redis under <prefix>:<context id>:fonts.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a RedisStore using client. An empty prefix uses DefaultRedisPrefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Key returns the Redis key holding the selection of contextID.
func (s *RedisStore) Key(contextID int64) string {
	return fmt.Sprintf("%s:%d:%s", s.prefix, contextID, font.SettingName)
}

// EnabledFonts returns the selection of contextID.
func (s *RedisStore) EnabledFonts(ctx context.Context, contextID int64) ([]string, error) {
	value, err := s.client.Get(ctx, s.Key(contextID)).Result()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.Key(contextID), err)
	}
	return DecodeSelection(value)
}

// SaveEnabledFonts replaces the selection of contextID.
func (s *RedisStore) SaveEnabledFonts(ctx context.Context, contextID int64, ids []string) error {
	value, err := EncodeSelection(ids)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.Key(contextID), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.Key(contextID), err)
	}
	return nil
}
