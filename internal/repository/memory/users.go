package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

var (
	_ model.CredentialStore = (*UserStore)(nil)
)

// UserStore keeps accounts, profiles and role grants in memory.
type UserStore struct {
	mu      sync.RWMutex
	clock   model.Clock
	users   map[uuid.UUID]model.User
	byEmail map[string]uuid.UUID
	roles   map[uuid.UUID][]string
}

func NewUserStore(clock model.Clock) *UserStore {
	if clock == nil {
		clock = model.SystemClock{}
	}
	return &UserStore{
		clock:   clock,
		users:   make(map[uuid.UUID]model.User),
		byEmail: make(map[string]uuid.UUID),
		roles:   make(map[uuid.UUID][]string),
	}
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return s.users[id], nil
}

func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *UserStore) Create(_ context.Context, user model.User, profile model.Profile, roleCode string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := s.byEmail[key]; ok {
		return model.User{}, model.ErrAlreadyExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := s.clock.Now()
	user.Profile = profile
	user.CreatedAt, user.UpdatedAt = now, now

	s.users[user.ID] = user
	s.byEmail[key] = user.ID
	s.roles[user.ID] = []string{roleCode}
	return user, nil
}

func (s *UserStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	return s.update(id, func(u *model.User) { u.PasswordHash = passwordHash })
}

func (s *UserStore) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time, ip string) error {
	return s.update(id, func(u *model.User) {
		u.LastLoginAt = &at
		if ip != "" {
			u.LastLoginIP = &ip
		}
	})
}

func (s *UserStore) MarkEmailVerified(_ context.Context, id uuid.UUID, at time.Time) error {
	return s.update(id, func(u *model.User) {
		u.EmailVerified = true
		u.EmailVerifiedAt = &at
	})
}

// SetStatus changes account status. Administrative flows outside the session
// core use it; tests use it to suspend accounts.
func (s *UserStore) SetStatus(_ context.Context, id uuid.UUID, status model.UserStatus) error {
	return s.update(id, func(u *model.User) { u.Status = status })
}

// Roles returns the role codes granted to userID.
func (s *UserStore) Roles(userID uuid.UUID) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.roles[userID]...)
}

func (s *UserStore) update(id uuid.UUID, fn func(*model.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.ErrNotFound
	}
	fn(&u)
	u.UpdatedAt = s.clock.Now()
	s.users[id] = u
	return nil
}
