package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hustle-finder/internal/models"
	"hustle-finder/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxCommunityLimit = 20

type RecommendationService struct {
	generator      Generator
	prefRepo       PreferenceStore
	recRepo        RecommendationStore
	communityLimit uint64
	logger         *zap.Logger
}

func NewRecommendationService(
	generator Generator,
	prefRepo PreferenceStore,
	recRepo RecommendationStore,
	communityLimit int,
	logger *zap.Logger,
) *RecommendationService {
	if communityLimit <= 0 || communityLimit > maxCommunityLimit {
		communityLimit = maxCommunityLimit
	}
	return &RecommendationService{
		generator:      generator,
		prefRepo:       prefRepo,
		recRepo:        recRepo,
		communityLimit: uint64(communityLimit),
		logger:         logger,
	}
}

// Generate produces one recommendation for the caller from their saved
// profile and history, and stores it as AI-generated and owned by them.
func (s *RecommendationService) Generate(ctx context.Context, user *Identity) (*models.Recommendation, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}

	pref, err := s.prefRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	history, err := s.recRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	hustle := s.generator.Generate(ctx, pref, user.Name, history)

	ownerID := user.ID
	rec := &models.Recommendation{
		ID:          uuid.New(),
		UserID:      &ownerID,
		Hustle:      hustle,
		AIGenerated: true,
		CreatedAt:   time.Now(),
	}

	if err := s.recRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("save recommendation: %w", err)
	}

	s.logger.Info("Recommendation saved",
		zap.String("user_id", user.ID.String()),
		zap.String("recommendation_id", rec.ID.String()),
		zap.String("source", rec.Source),
	)
	return rec, nil
}

// List returns the caller's recommendations, newest first.
func (s *RecommendationService) List(ctx context.Context, user *Identity) ([]*models.Recommendation, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return s.recRepo.ListByUserID(ctx, user.ID)
}

// Community returns the most recent user-owned recommendations.
func (s *RecommendationService) Community(ctx context.Context) ([]*models.CommunityRecommendation, error) {
	return s.recRepo.ListCommunity(ctx, s.communityLimit)
}

// Search is not persisted.
func (s *RecommendationService) Search(ctx context.Context, user *Identity, query, location string) ([]models.Hustle, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return s.generator.Search(ctx, query, location), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrPreferencesNotFound) || errors.Is(err, repository.ErrNotFound)
}
