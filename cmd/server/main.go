package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/deskware/helpdesk-system/docs" // swagger docs

	"github.com/deskware/helpdesk-system/internal/api"
	"github.com/deskware/helpdesk-system/internal/auth"
	"github.com/deskware/helpdesk-system/internal/core/service"
	"github.com/deskware/helpdesk-system/internal/infrastructure/config"
	"github.com/deskware/helpdesk-system/internal/infrastructure/db/mongo"
	"github.com/deskware/helpdesk-system/internal/infrastructure/db/redis"
	"github.com/deskware/helpdesk-system/internal/infrastructure/queue"
	"github.com/deskware/helpdesk-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Helpdesk API
// @version 1.0
// @description Helpdesk ticketing API with role-request workflow, JWT authentication, and role-based access control.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		lg := logger.Get()
		lg.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongo.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	ticketRepo := mongo.NewTicketRepository(db)
	auditRepo := mongo.NewAuditRepository(db)

	auditSink := queue.NewAuditDispatcher(cfg.AuditWorkers, auditRepo, logger.For("audit"))
	auditSink.Start(ctx)

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redis.NewLoginLimiter(rdb, redis.LimiterConfig{
		MaxAttempts: cfg.LoginMaxAttempts,
		Window:      cfg.LoginWindow,
	}, logger.For("limiter"))

	authService := service.NewAuthService(userRepo, issuer, cfg.AdminCodes, limiter, auditSink, log)
	roleService := service.NewRoleService(userRepo, auditSink, log)
	ticketService := service.NewTicketService(ticketRepo, userRepo, auditSink, log)

	e := api.NewRouter(api.Deps{
		Issuer:        issuer,
		AuthService:   authService,
		RoleService:   roleService,
		TicketService: ticketService,
		Mongo:         db,
		Redis:         rdb,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
