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

var recommendationColumns = []string{
	"id", "user_id", "title", "description", "category", "requirements",
	"estimated_earnings", "time_commitment", "location", "source", "ai_generated", "created_at",
}

type RecommendationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecommendationRepository(db *pgxpool.Pool, logger *zap.Logger) *RecommendationRepository {
	return &RecommendationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	sql, args, err := insertRecommendationQuery(rec).ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert recommendation: %w", err)
	}
	return nil
}

// ListByUserID returns the user's full history, newest first.
func (r *RecommendationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Recommendation, error) {
	sql, args, err := userRecommendationsQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	recommendations := make([]*models.Recommendation, 0)
	for rows.Next() {
		var rec models.Recommendation
		if err := rows.Scan(recommendationDest(&rec)...); err != nil {
			return nil, err
		}
		recommendations = append(recommendations, &rec)
	}

	return recommendations, rows.Err()
}

// ListCommunity returns user-owned recommendations across all users,
// newest first. System rows (no owner) are excluded.
func (r *RecommendationRepository) ListCommunity(ctx context.Context, limit uint64) ([]*models.CommunityRecommendation, error) {
	sql, args, err := communityQuery(limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list community recommendations: %w", err)
	}
	defer rows.Close()

	feed := make([]*models.CommunityRecommendation, 0, limit)
	for rows.Next() {
		var entry models.CommunityRecommendation
		dest := append(recommendationDest(&entry.Recommendation), &entry.UserName)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		feed = append(feed, &entry)
	}

	return feed, rows.Err()
}

// ExistsSystemTitle reports whether an ownerless recommendation with the
// given title is already stored.
func (r *RecommendationRepository) ExistsSystemTitle(ctx context.Context, title string) (bool, error) {
	sql, args, err := systemTitleQuery(title).ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check system title: %w", err)
	}
	return exists, nil
}

func recommendationDest(rec *models.Recommendation) []any {
	return []any{
		&rec.ID, &rec.UserID, &rec.Title, &rec.Description, &rec.Category, &rec.Requirements,
		&rec.EstimatedEarnings, &rec.TimeCommitment, &rec.Location, &rec.Source, &rec.AIGenerated, &rec.CreatedAt,
	}
}

func insertRecommendationQuery(rec *models.Recommendation) squirrel.InsertBuilder {
	return squirrel.Insert("recommendations").
		Columns(recommendationColumns...).
		Values(
			rec.ID, rec.UserID, rec.Title, rec.Description, rec.Category, rec.Requirements,
			rec.EstimatedEarnings, rec.TimeCommitment, rec.Location, rec.Source, rec.AIGenerated, rec.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)
}

func userRecommendationsQuery(userID uuid.UUID) squirrel.SelectBuilder {
	return squirrel.Select(recommendationColumns...).
		From("recommendations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func communityQuery(limit uint64) squirrel.SelectBuilder {
	columns := make([]string, 0, len(recommendationColumns)+1)
	for _, c := range recommendationColumns {
		columns = append(columns, "r."+c)
	}
	columns = append(columns, "COALESCE(NULLIF(u.name, ''), 'Anonymous') AS user_name")

	return squirrel.Select(columns...).
		From("recommendations r").
		Join("users u ON u.id = r.user_id").
		Where(squirrel.NotEq{"r.user_id": nil}).
		OrderBy("r.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)
}

func systemTitleQuery(title string) squirrel.SelectBuilder {
	return squirrel.Select("1").
		Prefix("SELECT EXISTS (").
		From("recommendations").
		Where(squirrel.Eq{"user_id": nil, "title": title}).
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar)
}
