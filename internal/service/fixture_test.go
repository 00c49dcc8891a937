package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/helpdesk-auth/internal/model"
	"github.com/dtroode/helpdesk-auth/internal/password"
	"github.com/dtroode/helpdesk-auth/internal/repository/memory"
	"github.com/dtroode/helpdesk-auth/internal/testutil"
	"github.com/dtroode/helpdesk-auth/internal/token"
)

var start = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

const (
	accessTTL  = time.Hour
	refreshTTL = 14 * 24 * time.Hour
	resetTTL   = time.Hour
)

// recordingNotifier captures the last token handed out per user.
type recordingNotifier struct {
	mu           sync.Mutex
	verification map[uuid.UUID]string
	reset        map[uuid.UUID]string
	completed    []uuid.UUID
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		verification: make(map[uuid.UUID]string),
		reset:        make(map[uuid.UUID]string),
	}
}

func (n *recordingNotifier) EmailVerificationRequested(_ context.Context, user model.User, token string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.verification[user.ID] = token
}

func (n *recordingNotifier) PasswordResetRequested(_ context.Context, user model.User, token string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reset[user.ID] = token
}

func (n *recordingNotifier) PasswordResetCompleted(_ context.Context, user model.User) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.completed = append(n.completed, user.ID)
}

func (n *recordingNotifier) verificationToken(id uuid.UUID) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.verification[id]
}

func (n *recordingNotifier) resetToken(id uuid.UUID) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	tok, ok := n.reset[id]
	return tok, ok
}

type fixture struct {
	clock         *testutil.Clock
	users         *memory.UserStore
	tokens        *memory.RefreshTokenStore
	blacklist     *Blacklist
	verifications *memory.VerificationStore
	resets        *memory.ResetStore
	hasher        *password.Bcrypt
	codec         *token.Codec
	notifier      *recordingNotifier
	ledger        *Ledger
	session       *Session
	reset         *PasswordReset
}

type fixtureOption func(*LedgerConfig)

func withRevokeAllOnReuse() fixtureOption {
	return func(c *LedgerConfig) { c.RevokeAllOnReuse = true }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	f := &fixture{
		clock:    testutil.NewClock(start),
		hasher:   password.NewBcrypt(bcrypt.MinCost),
		notifier: newRecordingNotifier(),
		tokens:   memory.NewRefreshTokenStore(),
	}
	f.users = memory.NewUserStore(f.clock)
	f.verifications = memory.NewVerificationStore(f.clock)
	f.resets = memory.NewResetStore(f.clock)
	f.blacklist = NewBlacklist(memory.NewBlacklistStore(f.clock), true, accessTTL)

	codec, err := token.NewCodec(token.Config{
		Secret:    "0123456789abcdef0123456789abcdef",
		Algorithm: "HS256",
		Issuer:    "helpdesk",
		Audience:  "helpdesk-app",
		TTL:       accessTTL,
	}, f.blacklist, f.clock)
	require.NoError(t, err)
	f.codec = codec

	ledgerCfg := LedgerConfig{RefreshTTL: refreshTTL}
	for _, opt := range opts {
		opt(&ledgerCfg)
	}

	log := testutil.MakeNoopLogger()
	f.ledger = NewLedger(f.tokens, f.users, f.codec, f.clock, nil, ledgerCfg, log)
	f.session = NewSession(SessionDeps{
		Users:         f.users,
		Hasher:        f.hasher,
		Codec:         f.codec,
		Ledger:        f.ledger,
		Blacklist:     f.blacklist,
		Verifications: f.verifications,
		Notifier:      f.notifier,
		Clock:         f.clock,
	}, SessionConfig{VerificationTTL: 24 * time.Hour}, log)
	f.reset = NewPasswordReset(
		f.users,
		f.hasher,
		f.resets,
		memory.NewResetThrottle(f.clock, time.Minute, 3*time.Hour, 2),
		f.ledger,
		f.notifier,
		nil,
		f.clock,
		ResetConfig{TTL: resetTTL, MaxAttempts: 3},
		log,
	)
	return f
}

// createUser stores an account directly, bypassing registration.
func (f *fixture) createUser(t *testing.T, email, plain string, status model.UserStatus) model.User {
	t.Helper()

	hash, err := f.hasher.Hash(plain)
	require.NoError(t, err)
	user, err := f.users.Create(context.Background(), model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Status:       status,
	}, model.Profile{FirstName: "Ana", LastName: "Quispe"}, model.DefaultRoleCode)
	require.NoError(t, err)
	return user
}

func (f *fixture) login(t *testing.T, email, plain string) model.AuthResult {
	t.Helper()

	res, err := f.session.Login(context.Background(), email, plain, model.DeviceInfo{IP: "10.0.0.1"})
	require.NoError(t, err)
	return res
}
