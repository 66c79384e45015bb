package handlers

import (
	"time"

	"hustle-finder/internal/dto"
	"hustle-finder/internal/models"
	"hustle-finder/internal/service"
	"hustle-finder/pkg/middleware"
	"hustle-finder/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// currentUser builds the caller identity from what AuthMiddleware stored.
// It returns nil for anonymous requests.
func currentUser(c *fiber.Ctx) *service.Identity {
	userIDStr, ok := c.Locals(middleware.LocalUserID).(string)
	if !ok {
		return nil
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil
	}

	name, _ := c.Locals(middleware.LocalUserName).(string)
	return &service.Identity{ID: userID, Name: name}
}

// bindRequest decodes the body into req and runs its validate tags. A
// non-empty result is the 400 message to send back.
func bindRequest(c *fiber.Ctx, req interface{}) string {
	if err := c.BodyParser(req); err != nil {
		return "Invalid request body"
	}
	if err := validation.Struct(req); err != nil {
		return err.Error()
	}
	return ""
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toHustleResponse(h models.Hustle) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		Title:             h.Title,
		Description:       h.Description,
		Category:          h.Category,
		Requirements:      h.Requirements,
		EstimatedEarnings: h.EstimatedEarnings,
		TimeCommitment:    h.TimeCommitment,
		Location:          h.Location,
		Source:            h.Source,
	}
}

func toRecommendationResponse(rec *models.Recommendation) dto.RecommendationResponse {
	resp := toHustleResponse(rec.Hustle)
	resp.ID = rec.ID.String()
	if rec.UserID != nil {
		owner := rec.UserID.String()
		resp.UserID = &owner
	}
	resp.AIGenerated = rec.AIGenerated
	resp.CreatedAt = formatTime(rec.CreatedAt)
	return resp
}

func toPreferenceResponse(p *models.Preference) dto.PreferenceResponse {
	return dto.PreferenceResponse{
		UserID:         p.UserID.String(),
		Country:        p.Country,
		City:           p.City,
		Interests:      p.Interests,
		AvailableHours: p.AvailableHours,
		Language:       p.Language,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}
