package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

var _ model.BlacklistStore = (*BlacklistStore)(nil)

type BlacklistStore struct {
	rdb redis.Cmdable
}

func NewBlacklistStore(rdb redis.Cmdable) *BlacklistStore {
	return &BlacklistStore{rdb: rdb}
}

// Add marks sessionID for ttl. Non-positive ttl is a no-op.
func (s *BlacklistStore) Add(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, blacklistPrefix+sessionID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist session: %w", err)
	}
	return nil
}

func (s *BlacklistStore) Contains(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, blacklistPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return n > 0, nil
}
