package handlers

import (
	"context"
	"errors"
	"strings"

	"hustle-finder/internal/dto"
	"hustle-finder/internal/models"
	"hustle-finder/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecommendationService interface {
	Generate(ctx context.Context, user *service.Identity) (*models.Recommendation, error)
	List(ctx context.Context, user *service.Identity) ([]*models.Recommendation, error)
	Community(ctx context.Context) ([]*models.CommunityRecommendation, error)
	Search(ctx context.Context, user *service.Identity, query, location string) ([]models.Hustle, error)
}

type RecommendationHandler struct {
	recService RecommendationService
	logger     *zap.Logger
}

func NewRecommendationHandler(recService RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		logger:     logger,
	}
}

// GenerateRecommendation godoc
// @Summary Generate a recommendation
// @Description Generate a new side hustle from the caller's preferences and store it
// @Tags recommendations
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.RecommendationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/recommendations/generate [post]
func (h *RecommendationHandler) GenerateRecommendation(c *fiber.Ctx) error {
	rec, err := h.recService.Generate(c.Context(), currentUser(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, service.ErrPreferencesNotFound):
			return errorResponse(c, fiber.StatusNotFound, "Preferences not found")
		}
		h.logger.Error("Failed to generate recommendation", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to generate recommendation")
	}

	return c.Status(fiber.StatusCreated).JSON(toRecommendationResponse(rec))
}

// ListRecommendations godoc
// @Summary List recommendations
// @Description Get the caller's recommendations, newest first
// @Tags recommendations
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.RecommendationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/recommendations [get]
func (h *RecommendationHandler) ListRecommendations(c *fiber.Ctx) error {
	recs, err := h.recService.List(c.Context(), currentUser(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		h.logger.Error("Failed to list recommendations", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to list recommendations")
	}

	resp := make([]dto.RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toRecommendationResponse(rec))
	}
	return c.JSON(resp)
}

// SearchRecommendations godoc
// @Summary Search side hustles
// @Description Ask the model for side hustles matching a query; results are not stored
// @Tags recommendations
// @Produce json
// @Param q query string true "Search query"
// @Param location query string false "Location"
// @Security Bearer
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/recommendations/search [get]
func (h *RecommendationHandler) SearchRecommendations(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Query is required")
	}
	location := strings.TrimSpace(c.Query("location"))

	results, err := h.recService.Search(c.Context(), currentUser(c), query, location)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		h.logger.Error("Search failed", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Search failed")
	}

	resp := dto.SearchResponse{
		Query:    query,
		Location: location,
		Results:  make([]dto.RecommendationResponse, 0, len(results)),
	}
	for _, hustle := range results {
		item := toHustleResponse(hustle)
		item.AIGenerated = true
		resp.Results = append(resp.Results, item)
	}
	return c.JSON(resp)
}

// CommunityHustles godoc
// @Summary Community feed
// @Description Most recent recommendations generated by users
// @Tags community
// @Produce json
// @Success 200 {array} dto.CommunityRecommendationResponse
// @Router /api/v1/community-hustles [get]
func (h *RecommendationHandler) CommunityHustles(c *fiber.Ctx) error {
	feed, err := h.recService.Community(c.Context())
	if err != nil {
		h.logger.Error("Failed to load community feed", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch community hustles")
	}

	resp := make([]dto.CommunityRecommendationResponse, 0, len(feed))
	for _, entry := range feed {
		resp = append(resp, dto.CommunityRecommendationResponse{
			RecommendationResponse: toRecommendationResponse(&entry.Recommendation),
			UserName:               entry.UserName,
		})
	}
	return c.JSON(resp)
}

// Catalog godoc
// @Summary Preference options
// @Description Suggested interests, supported languages and weekly hour buckets
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /api/v1/catalog [get]
func (h *RecommendationHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(service.Catalog())
}
