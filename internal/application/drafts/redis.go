package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"listing-wizard/internal/domain"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces draft keys in Redis.
const KeyPrefix = "wizard:draft:"

// RedisStore keeps drafts as JSON records under KeyPrefix+owner.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration // 0 keeps drafts until deleted
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: rdb, TTL: ttl}
}

func draftKey(owner string) string {
	if owner == "" {
		owner = DefaultOwner
	}
	return KeyPrefix + owner
}

func (s *RedisStore) Load(ctx context.Context, owner string) (domain.ListingRecord, error) {
	b, err := s.Client.Get(ctx, draftKey(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ListingRecord{}, ErrNoDraft
	}
	if err != nil {
		return domain.ListingRecord{}, fmt.Errorf("load draft: %w", err)
	}
	var record domain.ListingRecord
	if err := json.Unmarshal(b, &record); err != nil {
		return domain.ListingRecord{}, fmt.Errorf("decode draft: %w", err)
	}
	return record, nil
}

func (s *RedisStore) Save(ctx context.Context, owner string, record domain.ListingRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.Client.Set(ctx, draftKey(owner), b, s.TTL).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Exists(ctx context.Context, owner string) (bool, error) {
	n, err := s.Client.Exists(ctx, draftKey(owner)).Result()
	if err != nil {
		return false, fmt.Errorf("check draft: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, owner string) error {
	return s.Client.Del(ctx, draftKey(owner)).Err()
}
