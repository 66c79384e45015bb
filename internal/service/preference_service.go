package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hustle-finder/internal/dto"
	"hustle-finder/internal/models"
	"hustle-finder/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultLanguage = "en"

type PreferenceService struct {
	prefRepo PreferenceStore
	logger   *zap.Logger
}

func NewPreferenceService(prefRepo PreferenceStore, logger *zap.Logger) *PreferenceService {
	return &PreferenceService{
		prefRepo: prefRepo,
		logger:   logger,
	}
}

// Get returns ErrPreferencesNotFound when the user has not saved a profile yet.
func (s *PreferenceService) Get(ctx context.Context, userID uuid.UUID) (*models.Preference, error) {
	pref, err := s.prefRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return pref, nil
}

// Save creates or overwrites the user's profile.
func (s *PreferenceService) Save(ctx context.Context, userID uuid.UUID, req *dto.PreferenceRequest) (*models.Preference, error) {
	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = defaultLanguage
	}

	interests := make([]string, 0, len(req.Interests))
	for _, interest := range req.Interests {
		interests = append(interests, sanitizeUTF8(interest))
	}

	now := time.Now()
	pref := &models.Preference{
		UserID:         userID,
		Country:        sanitizeUTF8(strings.TrimSpace(req.Country)),
		City:           sanitizeUTF8(strings.TrimSpace(req.City)),
		Interests:      interests,
		AvailableHours: req.AvailableHours,
		Language:       language,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}
