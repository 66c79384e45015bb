package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hustle-finder/internal/api"
	"hustle-finder/internal/api/handlers"
	"hustle-finder/internal/llm"
	"hustle-finder/internal/repository"
	"hustle-finder/internal/service"
	"hustle-finder/pkg/auth"
	"hustle-finder/pkg/config"
	"hustle-finder/pkg/logger"
	"hustle-finder/pkg/postgres"

	"go.uber.org/zap"
)

// @title Hustle Finder API
// @version 1.0
// @description Personalized side hustle recommendations generated by an LLM.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Hustle Finder service", zap.String("llm_provider", cfg.LLM.Provider))

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	prefRepo := repository.NewPreferenceRepository(db, appLogger)
	recRepo := repository.NewRecommendationRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize LLM provider
	provider, err := llm.New(ctx, &cfg.LLM, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM provider", zap.Error(err))
	}
	defer provider.Close()

	primaryModel, secondaryModel := llm.DefaultModels(cfg.LLM.Provider)
	if cfg.LLM.PrimaryModel != "" {
		primaryModel = cfg.LLM.PrimaryModel
	}
	appLogger.Info("LLM models selected",
		zap.String("primary", primaryModel),
		zap.String("secondary", secondaryModel),
	)

	// Initialize services
	generator := service.NewHustleGenerator(provider, primaryModel, secondaryModel, appLogger)
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	prefService := service.NewPreferenceService(prefRepo, appLogger)
	recService := service.NewRecommendationService(generator, prefRepo, recRepo, cfg.Community.Limit, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	prefHandler := handlers.NewPreferenceHandler(prefService, appLogger)
	recHandler := handlers.NewRecommendationHandler(recService, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, authHandler, prefHandler, recHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
