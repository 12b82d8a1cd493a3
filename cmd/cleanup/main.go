// Command cleanup removes submissions older than the configured retention
// period. It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/formcheck-backend/internal/adapter/cache"
	"github.com/heartmarshall/formcheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/formcheck-backend/internal/adapter/postgres/form"
	"github.com/heartmarshall/formcheck-backend/internal/adapter/postgres/submission"
	"github.com/heartmarshall/formcheck-backend/internal/app"
	"github.com/heartmarshall/formcheck-backend/internal/config"
	submissionsvc "github.com/heartmarshall/formcheck-backend/internal/service/submission"
)

func main() {
	configPath := flag.String("config", "", "path to config YAML (default: CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	load := config.Load
	if *configPath != "" {
		load = func() (*config.Config, error) { return config.LoadFile(*configPath) }
	}
	cfg, err := load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Retention.SubmissionDays <= 0 {
		logger.Info("retention disabled, nothing to purge")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := submissionsvc.NewService(
		logger,
		form.New(pool),
		submission.New(pool),
		nil, // purging never evaluates
		cache.NoopGuard{},
		postgres.NewTxManager(pool),
	)

	threshold := time.Now().AddDate(0, 0, -cfg.Retention.SubmissionDays)

	if _, err := svc.PurgeOlderThan(ctx, threshold); err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}
}
