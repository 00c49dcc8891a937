package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key namespaces. Each store owns one prefix and its own TTL policy.
const (
	blacklistPrefix     = "auth:blacklist:"
	verifyUserPrefix    = "auth:verify:user:"
	verifyTokenPrefix   = "auth:verify:token:"
	resetPrefix         = "auth:reset:"
	resetCooldownPrefix = "auth:reset:cooldown:"
	resetWindowPrefix   = "auth:reset:window:"
)

// Client is a connected Redis client.
type Client struct {
	*redis.Client
}

// NewClient connects to Redis and verifies the connection with PING.
func NewClient(ctx context.Context, addr, password string, db int) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{Client: client}, nil
}

// hashKey keeps token plaintext out of key names.
func hashKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
