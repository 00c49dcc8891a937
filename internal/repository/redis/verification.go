package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

var _ model.VerificationStore = (*VerificationStore)(nil)

// VerificationStore keeps user -> token hash and token hash -> user.
type VerificationStore struct {
	rdb redis.Cmdable
}

func NewVerificationStore(rdb redis.Cmdable) *VerificationStore {
	return &VerificationStore{rdb: rdb}
}

func (s *VerificationStore) Put(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	userKey := verifyUserPrefix + userID.String()

	prev, err := s.rdb.Get(ctx, userKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to get previous verification token: %w", err)
	}

	hash := hashKey(token)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if prev != "" {
			pipe.Del(ctx, verifyTokenPrefix+prev)
		}
		pipe.Set(ctx, userKey, hash, ttl)
		pipe.Set(ctx, verifyTokenPrefix+hash, userID.String(), ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store verification token: %w", err)
	}
	return nil
}

func (s *VerificationStore) LookupUser(ctx context.Context, token string) (uuid.UUID, error) {
	raw, err := s.rdb.Get(ctx, verifyTokenPrefix+hashKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to look up verification token: %w", err)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse verification owner: %w", err)
	}
	return id, nil
}

func (s *VerificationStore) Delete(ctx context.Context, userID uuid.UUID) error {
	userKey := verifyUserPrefix + userID.String()

	hash, err := s.rdb.Get(ctx, userKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to get verification token: %w", err)
	}

	keys := []string{userKey}
	if hash != "" {
		keys = append(keys, verifyTokenPrefix+hash)
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete verification token: %w", err)
	}
	return nil
}
