//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/helpdesk-auth/internal/model"
	repo "github.com/dtroode/helpdesk-auth/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "helpdesk_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/helpdesk_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func createUser(t *testing.T, ctx context.Context, ur *repo.UserRepository, email string) model.User {
	t.Helper()
	u, err := ur.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		Status:       model.UserStatusActive,
		CreatedAt:    time.Now().UTC(),
	}, model.Profile{FirstName: "F", LastName: "L", Language: "en", Timezone: "UTC", Theme: "light"}, model.DefaultRoleCode)
	require.NoError(t, err)
	return u
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	t.Run("user_repository", func(t *testing.T) {
		u := createUser(t, ctx, ur, "User@Example.com")

		byEmail, err := ur.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)
		require.Equal(t, "F", byEmail.Profile.FirstName)

		_, err = ur.Create(ctx, model.User{ID: uuid.New(), Email: "user@EXAMPLE.com", PasswordHash: "h", Status: model.UserStatusActive}, model.Profile{}, model.DefaultRoleCode)
		require.ErrorIs(t, err, model.ErrAlreadyExists)

		require.NoError(t, ur.MarkEmailVerified(ctx, u.ID, time.Now().UTC()))
		require.NoError(t, ur.UpdateLastLogin(ctx, u.ID, time.Now().UTC(), "127.0.0.1"))
		require.NoError(t, ur.UpdatePassword(ctx, u.ID, "new-hash"))

		byID, err := ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, byID.EmailVerified)
		require.Equal(t, "new-hash", byID.PasswordHash)
	})

	t.Run("refresh_token_repository", func(t *testing.T) {
		u := createUser(t, ctx, ur, "ledger@example.com")
		tr := repo.NewRefreshTokenRepository(conn)
		now := time.Now().UTC().Truncate(time.Microsecond)

		parent := model.RefreshToken{ID: uuid.New(), UserID: u.ID, TokenHash: uuid.NewString(), ExpiresAt: now.Add(time.Hour), CreatedAt: now}
		require.NoError(t, tr.Create(ctx, parent))

		child := model.RefreshToken{ID: uuid.New(), UserID: u.ID, TokenHash: uuid.NewString(), ExpiresAt: now.Add(time.Hour), CreatedAt: now}
		require.NoError(t, tr.Rotate(ctx, parent.ID, child, now))

		got, err := tr.GetByHash(ctx, parent.TokenHash)
		require.NoError(t, err)
		require.True(t, got.IsRotated())

		err = tr.Rotate(ctx, parent.ID, model.RefreshToken{ID: uuid.New(), UserID: u.ID, TokenHash: uuid.NewString(), ExpiresAt: now.Add(time.Hour), CreatedAt: now}, now)
		require.ErrorIs(t, err, model.ErrTokenRevoked)

		list, err := tr.ListActiveByUser(ctx, u.ID, now)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, child.ID, list[0].ID)

		n, err := tr.RevokeAllByUser(ctx, u.ID, now, nil)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		purged, err := tr.DeleteExpired(ctx, now.Add(2*time.Hour))
		require.NoError(t, err)
		require.GreaterOrEqual(t, purged, int64(2))
	})
}

func TestRefreshTokenRepository_ConcurrentRotation(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	u := createUser(t, ctx, repo.NewUserRepository(conn), "race@example.com")
	tr := repo.NewRefreshTokenRepository(conn)
	now := time.Now().UTC()

	parent := model.RefreshToken{ID: uuid.New(), UserID: u.ID, TokenHash: uuid.NewString(), ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	require.NoError(t, tr.Create(ctx, parent))

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = tr.Rotate(ctx, parent.ID, model.RefreshToken{
				ID: uuid.New(), UserID: u.ID, TokenHash: uuid.NewString(), ExpiresAt: now.Add(time.Hour), CreatedAt: now,
			}, now)
		}()
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		require.True(t, errors.Is(err, model.ErrTokenRevoked), err)
	}
	require.Equal(t, 1, wins)

	list, err := tr.ListActiveByUser(ctx, u.ID, now)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
