package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/formcheck-backend/internal/adapter/cache"
	"github.com/heartmarshall/formcheck-backend/internal/adapter/postgres"
	formrepo "github.com/heartmarshall/formcheck-backend/internal/adapter/postgres/form"
	submissionrepo "github.com/heartmarshall/formcheck-backend/internal/adapter/postgres/submission"
	"github.com/heartmarshall/formcheck-backend/internal/auth"
	"github.com/heartmarshall/formcheck-backend/internal/config"
	"github.com/heartmarshall/formcheck-backend/internal/service/form"
	"github.com/heartmarshall/formcheck-backend/internal/service/submission"
	"github.com/heartmarshall/formcheck-backend/internal/service/validation"
	"github.com/heartmarshall/formcheck-backend/internal/transport/middleware"
	"github.com/heartmarshall/formcheck-backend/internal/transport/rest"
)

// attemptGuard deduplicates client submission attempts.
type attemptGuard interface {
	Claim(ctx context.Context, formID uuid.UUID, attemptID string) (bool, error)
	Release(ctx context.Context, formID uuid.UUID, attemptID string) error
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// the database and Redis, builds the validation engine and services, and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("signals_provider", cfg.Signals.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	guard, closeGuard, err := newAttemptGuard(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeGuard()

	signals, err := NewSignalProvider(ctx, cfg.Signals, logger)
	if err != nil {
		return err
	}
	engine := validation.NewAggregator(signals, cfg.Validation, logger)

	txManager := postgres.NewTxManager(pool)
	forms := formrepo.New(pool)
	submissions := submissionrepo.New(pool)

	formService := form.NewService(logger, forms, txManager)
	submissionService := submission.NewService(logger, forms, submissions, engine, guard, txManager)

	components := []rest.Component{{Name: "database", Pinger: pool}}
	if cfg.Redis.Enabled() {
		components = append(components, rest.Component{Name: "redis", Pinger: guard})
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(BuildVersion(), components...),
		Forms:       rest.NewFormHandler(formService, logger),
		Submissions: rest.NewSubmissionHandler(submissionService, logger),
	}, limiter.Limit(cfg.RateLimit.SubmitPerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.MaxBody(cfg.Server.MaxBodyBytes),
		middleware.Auth(auth.NewJWTManagerFromConfig(cfg.Auth), logger),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newAttemptGuard connects to Redis when configured. Without Redis every
// attempt is accepted and the unique index on (form_id, client_attempt_id)
// still rejects stored duplicates.
func newAttemptGuard(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (attemptGuard, func(), error) {
	if !cfg.Enabled() {
		logger.Info("redis not configured, attempt deduplication relies on the database")
		return cache.NoopGuard{}, func() {}, nil
	}

	client, err := cache.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis", slog.String("error", err.Error()))
		}
	}

	return cache.NewAttemptGuard(client, cfg.AttemptTTL), closeFn, nil
}
