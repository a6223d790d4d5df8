// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Strongly HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when REDIS_URL is set.
//  5. Run database migrations (idempotent).
//  6. Wire services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/strongly/internal/api"
	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/core/set"
	"github.com/taibuivan/strongly/internal/core/workout"
	"github.com/taibuivan/strongly/internal/platform/config"
	"github.com/taibuivan/strongly/internal/platform/constants"
	"github.com/taibuivan/strongly/internal/platform/migration"
	pgstore "github.com/taibuivan/strongly/internal/platform/postgres"
	redisstore "github.com/taibuivan/strongly/internal/platform/redis"
	"github.com/taibuivan/strongly/internal/platform/sec"
	"github.com/taibuivan/strongly/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Strongly] service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("auth_scheme", cfg.AuthScheme),
		slog.Bool("login_throttle", cfg.ThrottleEnabled()),
	)

	// Root context for the process; cancelled on shutdown so background loops stop.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.ThrottleEnabled() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth ───────────────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.JWTExpiry)
	must(log, err, "initialize token service")

	var throttle auth.LoginThrottle = auth.NoopLoginThrottle{}
	if rdb != nil {
		throttle = auth.NewRedisLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginLockout)
	}

	authService := auth.NewService(
		auth.NewUserRepository(pool),
		sec.NewPasswordHasher(cfg.BcryptCost),
		tokens,
		throttle,
		log,
	)

	authenticator, err := auth.NewAuthenticator(cfg.AuthScheme, authService)
	must(log, err, "initialize authenticator")

	// ── 7. Health handlers ────────────────────────────────────────────────
	deps := api.HealthDependencies{
		Database: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}
	if rdb != nil {
		deps.Cache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}
	liveness, readiness := api.NewHealthHandlers(deps, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	workoutService := workout.NewService(workout.NewPostgresRepository(pool), log)
	exerciseService := exercise.NewService(exercise.NewPostgresRepository(pool), workoutService, log)
	setService := set.NewService(set.NewPostgresRepository(pool), exerciseService, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, authenticator, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, authenticator),
		Workout:   workout.NewHandler(workoutService),
		Exercise:  exercise.NewHandler(exerciseService),
		Set:       set.NewHandler(setService),
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Startup wiring only. After startup, all errors are returned and handled.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
