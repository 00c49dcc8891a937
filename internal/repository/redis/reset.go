package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

const (
	fieldUserID    = "user_id"
	fieldEmail     = "email"
	fieldExpiresAt = "expires_at"
	fieldAttempts  = "attempts"
)

// decrementAttempts refuses to resurrect a missing hash.
var decrementAttempts = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return false
end
return redis.call('HINCRBY', KEYS[1], ARGV[1], -1)
`)

var _ model.ResetStore = (*ResetStore)(nil)

// ResetStore keeps pending reset requests as hashes keyed by token digest.
type ResetStore struct {
	rdb redis.Cmdable
}

func NewResetStore(rdb redis.Cmdable) *ResetStore {
	return &ResetStore{rdb: rdb}
}

func (s *ResetStore) Save(ctx context.Context, token string, req model.PasswordResetRequest, ttl time.Duration) error {
	key := resetPrefix + hashKey(token)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			fieldUserID, req.UserID.String(),
			fieldEmail, req.Email,
			fieldExpiresAt, req.ExpiresAt.UTC().Format(time.RFC3339Nano),
			fieldAttempts, req.AttemptsRemaining,
		)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store reset request: %w", err)
	}
	return nil
}

func (s *ResetStore) Get(ctx context.Context, token string) (model.PasswordResetRequest, error) {
	fields, err := s.rdb.HGetAll(ctx, resetPrefix+hashKey(token)).Result()
	if err != nil {
		return model.PasswordResetRequest{}, fmt.Errorf("failed to get reset request: %w", err)
	}
	return parseResetRequest(fields)
}

// Consume reads and deletes the hash inside one MULTI block.
func (s *ResetStore) Consume(ctx context.Context, token string) (model.PasswordResetRequest, error) {
	key := resetPrefix + hashKey(token)

	var get *redis.MapStringStringCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.HGetAll(ctx, key)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return model.PasswordResetRequest{}, fmt.Errorf("failed to consume reset request: %w", err)
	}
	return parseResetRequest(get.Val())
}

func parseResetRequest(fields map[string]string) (model.PasswordResetRequest, error) {
	if len(fields) == 0 {
		return model.PasswordResetRequest{}, model.ErrNotFound
	}

	userID, err := uuid.Parse(fields[fieldUserID])
	if err != nil {
		return model.PasswordResetRequest{}, fmt.Errorf("failed to parse reset owner: %w", err)
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, fields[fieldExpiresAt])
	if err != nil {
		return model.PasswordResetRequest{}, fmt.Errorf("failed to parse reset expiry: %w", err)
	}
	attempts, err := strconv.Atoi(fields[fieldAttempts])
	if err != nil {
		return model.PasswordResetRequest{}, fmt.Errorf("failed to parse reset attempts: %w", err)
	}

	return model.PasswordResetRequest{
		UserID:            userID,
		Email:             fields[fieldEmail],
		ExpiresAt:         expiresAt,
		AttemptsRemaining: attempts,
	}, nil
}

func (s *ResetStore) DecrementAttempts(ctx context.Context, token string) (int, error) {
	n, err := decrementAttempts.Run(ctx, s.rdb, []string{resetPrefix + hashKey(token)}, fieldAttempts).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, model.ErrNotFound
		}
		return 0, fmt.Errorf("failed to decrement reset attempts: %w", err)
	}
	return n, nil
}

func (s *ResetStore) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, resetPrefix+hashKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete reset request: %w", err)
	}
	return nil
}
