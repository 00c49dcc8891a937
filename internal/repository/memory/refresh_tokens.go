package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenStore)(nil)

// RefreshTokenStore is the in-memory ledger. A single mutex makes Rotate
// atomic with respect to every other operation.
type RefreshTokenStore struct {
	mu     sync.Mutex
	byID   map[uuid.UUID]model.RefreshToken
	byHash map[string]uuid.UUID
}

func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{
		byID:   make(map[uuid.UUID]model.RefreshToken),
		byHash: make(map[string]uuid.UUID),
	}
}

func (s *RefreshTokenStore) Create(_ context.Context, token model.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(token)
}

func (s *RefreshTokenStore) GetByHash(_ context.Context, tokenHash string) (model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byHash[tokenHash]
	if !ok {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return s.byID[id], nil
}

func (s *RefreshTokenStore) GetByIDForUser(_ context.Context, id, userID uuid.UUID) (model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok || t.UserID != userID {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return t, nil
}

func (s *RefreshTokenStore) GetByHashForUser(_ context.Context, tokenHash string, userID uuid.UUID) (model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byHash[tokenHash]
	if !ok || s.byID[id].UserID != userID {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return s.byID[id], nil
}

func (s *RefreshTokenStore) Rotate(_ context.Context, oldID uuid.UUID, replacement model.RefreshToken, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.byID[oldID]
	if !ok {
		return model.ErrNotFound
	}
	if old.IsRevoked() {
		return model.ErrTokenRevoked
	}
	if err := s.insert(replacement); err != nil {
		return err
	}

	old.LastUsedAt = &now
	old.RevokedAt = &now
	old.ReplacedByID = &replacement.ID
	s.byID[oldID] = old
	return nil
}

func (s *RefreshTokenStore) Revoke(_ context.Context, id uuid.UUID, now time.Time, revokedBy *uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok || t.IsRevoked() {
		return false, nil
	}
	t.RevokedAt = &now
	t.RevokedBy = revokedBy
	s.byID[id] = t
	return true, nil
}

func (s *RefreshTokenStore) RevokeAllByUser(_ context.Context, userID uuid.UUID, now time.Time, revokedBy *uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, t := range s.byID {
		if t.UserID != userID || t.IsRevoked() {
			continue
		}
		t.RevokedAt = &now
		t.RevokedBy = revokedBy
		s.byID[id] = t
		n++
	}
	return n, nil
}

func (s *RefreshTokenStore) ListActiveByUser(_ context.Context, userID uuid.UUID, now time.Time) ([]model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.RefreshToken
	for _, t := range s.byID {
		if t.UserID == userID && !t.IsRevoked() && !t.IsExpired(now) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return lastActivity(out[i]).After(lastActivity(out[j]))
	})
	return out, nil
}

func (s *RefreshTokenStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, t := range s.byID {
		if t.IsExpired(now) {
			delete(s.byID, id)
			delete(s.byHash, t.TokenHash)
			n++
		}
	}
	return n, nil
}

func (s *RefreshTokenStore) insert(token model.RefreshToken) error {
	if _, ok := s.byHash[token.TokenHash]; ok {
		return model.ErrAlreadyExists
	}
	if _, ok := s.byID[token.ID]; ok {
		return model.ErrAlreadyExists
	}
	s.byID[token.ID] = token
	s.byHash[token.TokenHash] = token.ID
	return nil
}

// lastActivity orders sessions the way the SQL store does:
// COALESCE(last_used_at, created_at) DESC.
func lastActivity(t model.RefreshToken) time.Time {
	if t.LastUsedAt != nil {
		return *t.LastUsedAt
	}
	return t.CreatedAt
}
