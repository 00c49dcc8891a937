package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

var _ model.ResetThrottle = (*ResetThrottle)(nil)

// ResetThrottle allows one reset per cooldown and limit resets per window.
type ResetThrottle struct {
	rdb      redis.Cmdable
	cooldown time.Duration
	window   time.Duration
	limit    int64
}

func NewResetThrottle(rdb redis.Cmdable, cooldown, window time.Duration, limit int) *ResetThrottle {
	return &ResetThrottle{rdb: rdb, cooldown: cooldown, window: window, limit: int64(limit)}
}

func (t *ResetThrottle) Allow(ctx context.Context, userID uuid.UUID) (bool, error) {
	id := userID.String()

	if t.cooldown > 0 {
		ok, err := t.rdb.SetNX(ctx, resetCooldownPrefix+id, "1", t.cooldown).Result()
		if err != nil {
			return false, fmt.Errorf("failed to check reset cooldown: %w", err)
		}
		if !ok {
			return false, nil
		}
	}

	if t.window <= 0 {
		return true, nil
	}

	key := resetWindowPrefix + id
	n, err := t.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count reset requests: %w", err)
	}
	if n == 1 {
		if err := t.rdb.Expire(ctx, key, t.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set reset window: %w", err)
		}
	}

	return n <= t.limit, nil
}
