package main

import (
	"context"
	"flag"
	"log"
	"time"

	"venturehive/internal/config"
	"venturehive/internal/database/migration"
	dbpostgres "venturehive/internal/database/postgres"
	"venturehive/internal/enrich"
	"venturehive/internal/logger"

	"go.uber.org/zap"
)

func main() {
	workers := flag.Int("workers", 0, "concurrent site fetches (default from config)")
	headless := flag.Bool("headless", false, "fall back to headless Chrome for empty pages")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
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

	opts := enrich.Options{
		Workers:     cfg.Enrich.Workers,
		RateLimit:   cfg.Enrich.RateLimit,
		UseHeadless: cfg.Enrich.UseHeadless || *headless,
	}
	if *workers > 0 {
		opts.Workers = *workers
	}

	n, err := enrich.NewEnricher(db, opts, zl).Run(ctx)
	if err != nil {
		zl.Fatal("enrichment run failed", zap.Error(err))
	}
	zl.Info("done", zap.Int("enriched", n))
}
