package app

import (
	"context"
	"time"

	"venturehive/internal/ai/gemini"
	"venturehive/internal/config"
	"venturehive/internal/database"
	"venturehive/internal/database/migration"
	dbpostgres "venturehive/internal/database/postgres"
	"venturehive/internal/delivery/http/handler"
	"venturehive/internal/delivery/http/middleware"
	"venturehive/internal/delivery/http/routes"
	v1 "venturehive/internal/delivery/http/routes/v1"
	"venturehive/internal/domain/matching"
	"venturehive/internal/infrastructure/cache"
	"venturehive/internal/pkg/jwt"
	"venturehive/internal/repository"
	"venturehive/internal/usecase"
	"venturehive/internal/ws"

	"go.uber.org/zap"
)

// Container wires config, infrastructure, usecases and HTTP handlers together.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service
	Hub   *ws.Hub

	Registry  *routes.Registry
	WSHandler *ws.Handler
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	migCtx, migCancel := context.WithTimeout(ctx, 2*time.Minute)
	defer migCancel()
	if err := migration.Run(migCtx, db, logger); err != nil {
		db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	var oracle matching.ScoringOracle
	var analyzer usecase.DeckAnalyzer
	if cfg.OracleEnabled() {
		client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			db.Close()
			return nil, err
		}
		oracle = meteredOracle{inner: gemini.NewOracle(client, logger, 0)}
		analyzer = gemini.NewDeckAnalyzer(client, logger)
		logger.Info("gemini oracle enabled", zap.String("model", cfg.Gemini.Model))
	} else {
		logger.Info("gemini oracle disabled, matching runs rule-based only")
	}

	scorer := matching.NewScorer(oracle, cfg.Gemini.Timeout, logger)

	hub := ws.NewHub(logger)
	notifier := ws.NewDealRoomNotifier(hub, logger)

	userRepo := repository.NewPostgresUserRepository(db)
	investorRepo := repository.NewPostgresInvestorRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)
	commentRepo := repository.NewPostgresCommentRepository(db)
	engagementRepo := repository.NewPostgresEngagementRepository(db)
	contactRepo := repository.NewPostgresContactRequestRepository(db)
	dealRoomRepo := repository.NewPostgresDealRoomRepository(db)
	subscriptionRepo := repository.NewPostgresSubscriptionRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	investorUC := usecase.NewInvestorUsecase(investorRepo)
	projectUC := usecase.NewProjectUsecase(projectRepo)
	commentUC := usecase.NewCommentUsecase(commentRepo, projectRepo)
	engagementUC := usecase.NewEngagementUsecase(engagementRepo, projectRepo, redisCache)
	contactUC := usecase.NewContactUsecase(contactRepo, projectRepo)
	dealRoomUC := usecase.NewDealRoomUsecase(dealRoomRepo, contactRepo, projectRepo, notifier)
	subscriptionUC := usecase.NewSubscriptionUsecase(subscriptionRepo)
	matchUC := usecase.NewMatchUsecase(scorer, projectRepo, investorRepo, matchRepo, redisCache, logger)
	insightUC := usecase.NewInsightUsecase(projectRepo, analyzer)

	authMW := middleware.NewAuthMiddleware(jwtSvc)

	registry := &routes.Registry{
		Health: handler.NewHealthHandler(db),
		V1: v1.Handlers{
			Auth:         handler.NewAuthHandler(authUC),
			Investor:     handler.NewInvestorHandler(investorUC),
			Project:      handler.NewProjectHandler(projectUC),
			Comment:      handler.NewCommentHandler(commentUC),
			Engagement:   handler.NewEngagementHandler(engagementUC),
			Contact:      handler.NewContactHandler(contactUC),
			DealRoom:     handler.NewDealRoomHandler(dealRoomUC),
			Subscription: handler.NewSubscriptionHandler(subscriptionUC),
			Match:        handler.NewMatchHandler(matchUC),
			Insight:      handler.NewInsightHandler(insightUC),
		},
		AuthMW:    authMW,
		AccessLog: middleware.NewAccessLogMiddleware(logger),
		ErrorMW:   middleware.NewErrorMiddleware(logger),
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		JWT:       jwtSvc,
		Hub:       hub,
		Registry:  registry,
		WSHandler: ws.NewHandler(hub, jwtSvc, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
