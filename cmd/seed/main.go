package main

import (
	"context"
	"log"
	"time"

	"venturehive/internal/config"
	"venturehive/internal/database/migration"
	dbpostgres "venturehive/internal/database/postgres"
	"venturehive/internal/logger"
	"venturehive/internal/seeder"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.Run(ctx, db, zl); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	if err := seeder.NewDemoSeeder(db, zl).Run(ctx); err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}
}
