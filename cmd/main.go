package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/helpdesk-auth/internal/api/grpc/context"
	"github.com/dtroode/helpdesk-auth/internal/api/grpc/router"
	grpcServer "github.com/dtroode/helpdesk-auth/internal/api/grpc/server"
	"github.com/dtroode/helpdesk-auth/internal/config"
	"github.com/dtroode/helpdesk-auth/internal/logger"
	"github.com/dtroode/helpdesk-auth/internal/metrics"
	"github.com/dtroode/helpdesk-auth/internal/model"
	"github.com/dtroode/helpdesk-auth/internal/notify"
	"github.com/dtroode/helpdesk-auth/internal/password"
	"github.com/dtroode/helpdesk-auth/internal/repository/memory"
	"github.com/dtroode/helpdesk-auth/internal/repository/postgres"
	"github.com/dtroode/helpdesk-auth/internal/repository/redis"
	"github.com/dtroode/helpdesk-auth/internal/server"
	"github.com/dtroode/helpdesk-auth/internal/service"
	"github.com/dtroode/helpdesk-auth/internal/token"
	"github.com/dtroode/helpdesk-auth/internal/worker"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// stores groups the persistence backends selected by DATABASE_DRIVER.
type stores struct {
	users         model.CredentialStore
	refreshTokens model.RefreshTokenStore
	blacklist     model.BlacklistStore
	verifications model.VerificationStore
	resets        model.ResetStore
	throttle      model.ResetThrottle
	close         func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// a missing .env file is not an error
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithWriter(os.Stdout, cfg.LogLevel, cfg.LogJSON)

	clock := model.SystemClock{}

	st, err := openStores(ctx, cfg, clock)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer st.close()

	var authMetrics model.Metrics = model.NopMetrics{}
	if cfg.Metrics.Enabled {
		m, err := metrics.New(prometheus.DefaultRegisterer)
		if err != nil {
			logger.Fatal("failed to register metrics", "error", err)
		}
		authMetrics = m
	}

	blacklist := service.NewBlacklist(st.blacklist, cfg.JWT.BlacklistEnabled, cfg.JWT.TTL())
	codec, err := token.NewCodec(token.Config{
		Secret:         cfg.JWT.Secret,
		Algorithm:      cfg.JWT.Algorithm,
		Issuer:         cfg.JWT.Issuer,
		Audience:       cfg.JWT.Audience,
		TTL:            cfg.JWT.TTL(),
		RequiredClaims: cfg.JWT.RequiredClaims,
	}, blacklist, clock)
	if err != nil {
		logger.Fatal("failed to initialize token codec", "error", err)
	}

	logger.Warn("no mail delivery configured, verification and reset tokens are not sent")
	dispatcher := notify.NewDispatcher(notify.NewLogNotifier(logger), cfg.Auth.NotificationQueueSize, logger)
	hasher := password.NewBcrypt(cfg.Auth.BcryptCost)

	ledger := service.NewLedger(st.refreshTokens, st.users, codec, clock, authMetrics, service.LedgerConfig{
		RefreshTTL:       cfg.JWT.RefreshTTL(),
		RevokeAllOnReuse: cfg.Auth.RevokeAllOnRefreshReuse,
	}, logger)
	sessionService := service.NewSession(service.SessionDeps{
		Users:         st.users,
		Hasher:        hasher,
		Codec:         codec,
		Ledger:        ledger,
		Blacklist:     blacklist,
		Verifications: st.verifications,
		Notifier:      dispatcher,
		Metrics:       authMetrics,
		Clock:         clock,
	}, service.SessionConfig{VerificationTTL: cfg.Auth.VerificationTTL}, logger)
	resetService := service.NewPasswordReset(st.users, hasher, st.resets, st.throttle, ledger, dispatcher, authMetrics, clock,
		service.ResetConfig{TTL: cfg.Auth.ResetTTL, MaxAttempts: cfg.Auth.ResetMaxAttempts}, logger)

	ctxMgr := grpcctx.NewManager()
	grpcServer := registerGRPCServer(logger, sessionService, resetService, codec, ctxMgr, fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.NewPurgeWorker(ledger, cfg.Auth.PurgeInterval, logger).Run(ctx)
	}()

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = newMetricsServer(cfg.Metrics.Addr)
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("Starting metrics server on", "address", cfg.Metrics.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("failed to start metrics server", "error", err)
			}
		}()
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during metrics server shutdown", "error", err)
		}
	}

	wg.Wait()
	dispatcher.Close()
	if n := dispatcher.Dropped(); n > 0 {
		logger.Warn("notifications dropped", "count", n)
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func openStores(ctx context.Context, cfg *config.Config, clock model.Clock) (*stores, error) {
	if cfg.Database.Driver == "memory" {
		users := memory.NewUserStore(clock)
		return &stores{
			users:         users,
			refreshTokens: memory.NewRefreshTokenStore(),
			blacklist:     memory.NewBlacklistStore(clock),
			verifications: memory.NewVerificationStore(clock),
			resets:        memory.NewResetStore(clock),
			throttle:      memory.NewResetThrottle(clock, cfg.Auth.ResetCooldown, cfg.Auth.ResetWindow, cfg.Auth.ResetWindowLimit),
			close:         func() {},
		}, nil
	}

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &stores{
		users:         postgres.NewUserRepository(db),
		refreshTokens: postgres.NewRefreshTokenRepository(db),
		blacklist:     redis.NewBlacklistStore(rdb),
		verifications: redis.NewVerificationStore(rdb),
		resets:        redis.NewResetStore(rdb),
		throttle:      redis.NewResetThrottle(rdb, cfg.Auth.ResetCooldown, cfg.Auth.ResetWindow, cfg.Auth.ResetWindowLimit),
		close: func() {
			_ = rdb.Close()
			_ = db.Close()
		},
	}, nil
}

func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func registerGRPCServer(
	logger *logger.Logger,
	sessionService *service.Session,
	resetService *service.PasswordReset,
	codec *token.Codec,
	ctxMgr model.ContextManager,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(sessionService, resetService, codec, ctxMgr, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
