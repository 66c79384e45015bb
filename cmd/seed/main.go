package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hustle-finder/internal/models"
	"hustle-finder/internal/repository"
	"hustle-finder/pkg/config"
	"hustle-finder/pkg/logger"
	"hustle-finder/pkg/postgres"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const seedSource = "Hustle Finder catalog"

type seedStore interface {
	ExistsSystemTitle(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, rec *models.Recommendation) error
}

func main() {
	seedFile := flag.String("file", filepath.Join("cmd", "seed", "hustles.json"), "path to the system hustles JSON file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	hustles, err := loadSeedFile(*seedFile)
	if err != nil {
		appLogger.Fatal("Failed to read seed file", zap.String("path", *seedFile), zap.Error(err))
	}

	appLogger.Info("Starting database seeding...", zap.Int("hustles", len(hustles)))

	recRepo := repository.NewRecommendationRepository(db, appLogger)
	inserted, err := seedHustles(ctx, recRepo, hustles, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed hustles", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!", zap.Int("inserted", inserted))
}

func loadSeedFile(path string) ([]models.Hustle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var hustles []models.Hustle
	if err := json.Unmarshal(data, &hustles); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return hustles, nil
}

// seedHustles inserts ownerless recommendations, skipping titles that are
// already stored. It returns how many rows were inserted.
func seedHustles(ctx context.Context, store seedStore, hustles []models.Hustle, logger *zap.Logger) (int, error) {
	inserted := 0
	now := time.Now()

	for i, hustle := range hustles {
		hustle.Title = strings.TrimSpace(hustle.Title)
		if hustle.Title == "" {
			logger.Warn("Skipping seed entry without title", zap.Int("index", i))
			continue
		}

		exists, err := store.ExistsSystemTitle(ctx, hustle.Title)
		if err != nil {
			return inserted, err
		}
		if exists {
			logger.Info("Hustle already seeded, skipping", zap.String("title", hustle.Title))
			continue
		}

		if hustle.Source == "" {
			hustle.Source = seedSource
		}

		rec := &models.Recommendation{
			ID:          uuid.New(),
			Hustle:      hustle,
			AIGenerated: false,
			// keep file order when listed newest first
			CreatedAt: now.Add(-time.Duration(i) * time.Second),
		}
		if err := store.Create(ctx, rec); err != nil {
			return inserted, fmt.Errorf("failed to insert %q: %w", hustle.Title, err)
		}
		inserted++
	}

	return inserted, nil
}
