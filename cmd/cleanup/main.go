// Command cleanup removes audit records older than the retention period.
// It is meant to be run by an external scheduler.
//
// Usage:
//
//	cleanup [-older-than 2160h] [-timeout 5m]
//
// Without -older-than the configured AUDIT_RETENTION_DAYS applies.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/resource-registry/internal/adapter/postgres"
	"github.com/heartmarshall/resource-registry/internal/adapter/postgres/audit"
	"github.com/heartmarshall/resource-registry/internal/app"
	"github.com/heartmarshall/resource-registry/internal/config"
)

func main() {
	olderThan := flag.Duration("older-than", 0, "override the configured retention period")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	retention := cfg.Audit.Retention()
	if *olderThan > 0 {
		retention = *olderThan
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, logger, retention); err != nil {
		logger.Error("audit cleanup failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, retention time.Duration) error {
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	threshold := time.Now().Add(-retention)
	deleted, err := audit.New(pool).DeleteOlderThan(ctx, threshold)
	if err != nil {
		return fmt.Errorf("delete before %s: %w", threshold.Format(time.RFC3339), err)
	}

	logger.Info("audit cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
		slog.Duration("retention", retention),
	)
	return nil
}
