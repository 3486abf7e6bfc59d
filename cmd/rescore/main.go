package main

import (
	"context"
	"flag"
	"log"
	"time"

	"venturehive/internal/config"
	"venturehive/internal/database/migration"
	dbpostgres "venturehive/internal/database/postgres"
	"venturehive/internal/domain/matching"
	"venturehive/internal/logger"
	"venturehive/internal/pipeline"
	"venturehive/internal/repository"

	"go.uber.org/zap"
)

func main() {
	timeout := flag.Duration("timeout", 15*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.Run(ctx, db, zl); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	// Batch rescoring is rule-based only; oracle refinement stays on the
	// request path where its cost is per-call.
	scorer := matching.NewScorer(nil, 0, zl)
	p := pipeline.NewRescorePipeline(
		scorer,
		repository.NewPostgresProjectRepository(db),
		repository.NewPostgresInvestorRepository(db),
		repository.NewPostgresMatchRepository(db),
		zl,
	)

	stats, err := p.Run(ctx)
	if err != nil {
		zl.Fatal("rescore failed", zap.Error(err))
	}
	zl.Info("done",
		zap.Int("projects", stats.Projects),
		zap.Int("scored", stats.Scored),
		zap.Int("skipped", stats.Skipped),
	)
}
