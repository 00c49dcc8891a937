package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// ttlMap is a mutex-guarded map whose entries expire by the supplied clock.
type ttlMap[V any] struct {
	mu    sync.Mutex
	clock model.Clock
	items map[string]entry[V]
}

func newTTLMap[V any](clock model.Clock) *ttlMap[V] {
	if clock == nil {
		clock = model.SystemClock{}
	}
	return &ttlMap[V]{clock: clock, items: make(map[string]entry[V])}
}

func (m *ttlMap[V]) set(key string, v V, ttl time.Duration) {
	m.items[key] = entry[V]{value: v, expiresAt: m.clock.Now().Add(ttl)}
}

func (m *ttlMap[V]) get(key string) (V, bool) {
	e, ok := m.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !m.clock.Now().Before(e.expiresAt) {
		delete(m.items, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

var _ model.BlacklistStore = (*BlacklistStore)(nil)

type BlacklistStore struct {
	m *ttlMap[struct{}]
}

func NewBlacklistStore(clock model.Clock) *BlacklistStore {
	return &BlacklistStore{m: newTTLMap[struct{}](clock)}
}

func (s *BlacklistStore) Add(_ context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.set(sessionID, struct{}{}, ttl)
	return nil
}

func (s *BlacklistStore) Contains(_ context.Context, sessionID string) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	_, ok := s.m.get(sessionID)
	return ok, nil
}

var _ model.VerificationStore = (*VerificationStore)(nil)

// VerificationStore keeps both directions under one lock.
type VerificationStore struct {
	byUser  *ttlMap[string]
	byToken *ttlMap[uuid.UUID]
}

func NewVerificationStore(clock model.Clock) *VerificationStore {
	return &VerificationStore{
		byUser:  newTTLMap[string](clock),
		byToken: newTTLMap[uuid.UUID](clock),
	}
}

func (s *VerificationStore) Put(_ context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	s.byUser.mu.Lock()
	defer s.byUser.mu.Unlock()

	if prev, ok := s.byUser.get(userID.String()); ok {
		delete(s.byToken.items, prev)
	}
	s.byUser.set(userID.String(), token, ttl)
	s.byToken.set(token, userID, ttl)
	return nil
}

func (s *VerificationStore) LookupUser(_ context.Context, token string) (uuid.UUID, error) {
	s.byUser.mu.Lock()
	defer s.byUser.mu.Unlock()

	id, ok := s.byToken.get(token)
	if !ok {
		return uuid.Nil, model.ErrNotFound
	}
	return id, nil
}

func (s *VerificationStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.byUser.mu.Lock()
	defer s.byUser.mu.Unlock()

	if token, ok := s.byUser.items[userID.String()]; ok {
		delete(s.byToken.items, token.value)
	}
	delete(s.byUser.items, userID.String())
	return nil
}

var _ model.ResetStore = (*ResetStore)(nil)

type ResetStore struct {
	m *ttlMap[model.PasswordResetRequest]
}

func NewResetStore(clock model.Clock) *ResetStore {
	return &ResetStore{m: newTTLMap[model.PasswordResetRequest](clock)}
}

func (s *ResetStore) Save(_ context.Context, token string, req model.PasswordResetRequest, ttl time.Duration) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.set(token, req, ttl)
	return nil
}

func (s *ResetStore) Get(_ context.Context, token string) (model.PasswordResetRequest, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	req, ok := s.m.get(token)
	if !ok {
		return model.PasswordResetRequest{}, model.ErrNotFound
	}
	return req, nil
}

func (s *ResetStore) DecrementAttempts(_ context.Context, token string) (int, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.get(token); !ok {
		return 0, model.ErrNotFound
	}
	e := s.m.items[token]
	e.value.AttemptsRemaining--
	s.m.items[token] = e
	return e.value.AttemptsRemaining, nil
}

func (s *ResetStore) Consume(_ context.Context, token string) (model.PasswordResetRequest, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	req, ok := s.m.get(token)
	if !ok {
		return model.PasswordResetRequest{}, model.ErrNotFound
	}
	delete(s.m.items, token)
	return req, nil
}

func (s *ResetStore) Delete(_ context.Context, token string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.items, token)
	return nil
}

var _ model.ResetThrottle = (*ResetThrottle)(nil)

// ResetThrottle mirrors the Redis throttle: one request per cooldown and
// limit requests per window.
type ResetThrottle struct {
	cooldown *ttlMap[struct{}]
	window   *ttlMap[int]
	cd, win  time.Duration
	limit    int
}

func NewResetThrottle(clock model.Clock, cooldown, window time.Duration, limit int) *ResetThrottle {
	return &ResetThrottle{
		cooldown: newTTLMap[struct{}](clock),
		window:   newTTLMap[int](clock),
		cd:       cooldown,
		win:      window,
		limit:    limit,
	}
}

func (t *ResetThrottle) Allow(_ context.Context, userID uuid.UUID) (bool, error) {
	t.cooldown.mu.Lock()
	defer t.cooldown.mu.Unlock()

	key := userID.String()
	if t.cd > 0 {
		if _, ok := t.cooldown.get(key); ok {
			return false, nil
		}
		t.cooldown.set(key, struct{}{}, t.cd)
	}

	if t.win <= 0 {
		return true, nil
	}

	n, ok := t.window.get(key)
	if !ok {
		t.window.set(key, 1, t.win)
		return 1 <= t.limit, nil
	}
	n++
	e := t.window.items[key]
	e.value = n
	t.window.items[key] = e
	return n <= t.limit, nil
}
