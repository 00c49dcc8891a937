package service

import (
	"context"
	"time"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

var _ model.BlacklistStore = (*Blacklist)(nil)

// Blacklist applies the feature flag and default TTL in front of a store.
type Blacklist struct {
	store      model.BlacklistStore
	enabled    bool
	defaultTTL time.Duration
}

func NewBlacklist(store model.BlacklistStore, enabled bool, defaultTTL time.Duration) *Blacklist {
	return &Blacklist{store: store, enabled: enabled, defaultTTL: defaultTTL}
}

// Add blacklists sessionID for ttl, or for the default TTL when ttl is zero.
func (b *Blacklist) Add(ctx context.Context, sessionID string, ttl time.Duration) error {
	if !b.enabled || sessionID == "" {
		return nil
	}
	if ttl == 0 {
		ttl = b.defaultTTL
	}
	return b.store.Add(ctx, sessionID, ttl)
}

func (b *Blacklist) Contains(ctx context.Context, sessionID string) (bool, error) {
	if !b.enabled || sessionID == "" {
		return false, nil
	}
	return b.store.Contains(ctx, sessionID)
}
