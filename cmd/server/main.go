package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/vmorales/condoledger/internal/adapter/http"
	"github.com/vmorales/condoledger/internal/adapter/http/handler"
	"github.com/vmorales/condoledger/internal/adapter/http/middleware"
	postgresRepo "github.com/vmorales/condoledger/internal/adapter/repository/postgres"
	redisRepo "github.com/vmorales/condoledger/internal/adapter/repository/redis"
	"github.com/vmorales/condoledger/internal/infrastructure/auth"
	"github.com/vmorales/condoledger/internal/infrastructure/config"
	"github.com/vmorales/condoledger/internal/infrastructure/logger"
	"github.com/vmorales/condoledger/internal/infrastructure/metrics"
	"github.com/vmorales/condoledger/internal/infrastructure/postgres"
	"github.com/vmorales/condoledger/internal/infrastructure/redis"
	"github.com/vmorales/condoledger/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	appMetrics := metrics.New()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Initialize repositories
	retrier := postgresRepo.NewRetrier(appLogger)
	txManager := postgresRepo.NewTxManager(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool, retrier, appLogger)
	statusRepo := postgresRepo.NewStatusRepository(pool, appLogger)
	directoryRepo := postgresRepo.NewDirectoryRepository(pool)
	configRepo := postgresRepo.NewConfigRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	allocator := postgresRepo.NewMovementIDAllocator()
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	consolidationUC := usecase.NewConsolidationUseCase(movementRepo, statusRepo, directoryRepo, cache, appLogger)
	statementUC := usecase.NewStatementUseCase(movementRepo, statusRepo, directoryRepo)
	boardUC := usecase.NewBoardUseCase(statusRepo, directoryRepo, cache, appLogger)
	movementUC := usecase.NewMovementUseCase(txManager, movementRepo, directoryRepo, configRepo, allocator, appLogger)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userUC, jwtManager, appMetrics)
	statementHandler := handler.NewStatementHandler(statementUC)
	movementHandler := handler.NewMovementHandler(movementUC, appMetrics)
	delinquencyHandler := handler.NewDelinquencyHandler(consolidationUC, boardUC, appMetrics)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        authHandler,
		StatementHandler:   statementHandler,
		MovementHandler:    movementHandler,
		DelinquencyHandler: delinquencyHandler,
		HealthHandler:      healthHandler,
		JWTManager:         jwtManager,
		IdempotencyStore:   idempotencyStore,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
