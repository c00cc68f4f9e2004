package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/resource-registry/internal/adapter/postgres"
	"github.com/heartmarshall/resource-registry/internal/adapter/postgres/audit"
	resourcerepo "github.com/heartmarshall/resource-registry/internal/adapter/postgres/resource"
	"github.com/heartmarshall/resource-registry/internal/auth"
	"github.com/heartmarshall/resource-registry/internal/config"
	"github.com/heartmarshall/resource-registry/internal/service/resource"
	"github.com/heartmarshall/resource-registry/internal/transport/middleware"
	"github.com/heartmarshall/resource-registry/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, optionally applies migrations and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, pool, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewHandler assembles repositories, the resource service and the HTTP
// stack on top of pool. The rate limit middleware is skipped when disabled
// in cfg.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, limiter *middleware.RateLimiter) http.Handler {
	txm := postgres.NewTxManager(pool, postgres.WithLockTimeout(cfg.Database.LockTimeout))

	svc := resource.NewService(
		logger,
		resourcerepo.New(pool),
		audit.New(pool),
		txm,
		resource.Config{
			DefaultPageSize: cfg.Resources.DefaultPageSize,
			MaxPageSize:     cfg.Resources.MaxPageSize,
			HistoryLimit:    cfg.Resources.HistoryLimit,
		},
	)

	router := rest.NewRouter(
		rest.NewResourceHandler(svc, logger, cfg.Server.MaxBodyBytes),
		rest.NewHealthHandler(pool, BuildVersion()).WithSchema(postgres.NewSchemaChecker(pool)),
	)

	// A typed nil validator would pass the middleware's nil check.
	identity := middleware.Identity(cfg.Auth.IdentityHeader, nil)
	if cfg.Auth.BearerEnabled() {
		identity = middleware.Identity(cfg.Auth.IdentityHeader,
			auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL))
	}

	mws := []middleware.Middleware{
		middleware.RequestID(),
		identity,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))
	}

	return middleware.Chain(mws...)(router)
}
