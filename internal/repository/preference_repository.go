package repository

import (
	"context"
	"fmt"

	"hustle-finder/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PreferenceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPreferenceRepository(db *pgxpool.Pool, logger *zap.Logger) *PreferenceRepository {
	return &PreferenceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Preference, error) {
	sql, args, err := selectPreferenceQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Preference
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.UserID, &p.Country, &p.City, &p.Interests, &p.AvailableHours, &p.Language, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}

	return &p, nil
}

// Upsert stores the profile, replacing any previous one for the same user.
// CreatedAt and UpdatedAt are refreshed from the stored row.
func (r *PreferenceRepository) Upsert(ctx context.Context, p *models.Preference) error {
	sql, args, err := upsertPreferenceQuery(p).ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}

	r.logger.Debug("Preferences saved", zap.String("user_id", p.UserID.String()))
	return nil
}

func selectPreferenceQuery(userID uuid.UUID) squirrel.SelectBuilder {
	return squirrel.Select("user_id", "country", "city", "interests", "available_hours", "language", "created_at", "updated_at").
		From("user_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)
}

func upsertPreferenceQuery(p *models.Preference) squirrel.InsertBuilder {
	return squirrel.Insert("user_preferences").
		Columns("user_id", "country", "city", "interests", "available_hours", "language", "created_at", "updated_at").
		Values(p.UserID, p.Country, p.City, p.Interests, p.AvailableHours, p.Language, p.CreatedAt, p.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " +
			"country = EXCLUDED.country, city = EXCLUDED.city, interests = EXCLUDED.interests, " +
			"available_hours = EXCLUDED.available_hours, language = EXCLUDED.language, updated_at = EXCLUDED.updated_at " +
			"RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)
}
