package service

import (
	"context"

	"hustle-finder/internal/models"

	"github.com/google/uuid"
)

// Storage contracts the services depend on. The repository package
// provides the Postgres implementations.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type PreferenceStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Preference, error)
	Upsert(ctx context.Context, p *models.Preference) error
}

type RecommendationStore interface {
	Create(ctx context.Context, rec *models.Recommendation) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Recommendation, error)
	ListCommunity(ctx context.Context, limit uint64) ([]*models.CommunityRecommendation, error)
}

// Generator is implemented by *HustleGenerator.
type Generator interface {
	Generate(ctx context.Context, pref *models.Preference, displayName string, history []*models.Recommendation) models.Hustle
	Search(ctx context.Context, query, location string) []models.Hustle
}

// Identity is the authenticated caller.
type Identity struct {
	ID   uuid.UUID
	Name string
}
