package handlers

import (
	"context"
	"errors"

	"hustle-finder/internal/dto"
	"hustle-finder/internal/models"
	"hustle-finder/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PreferenceService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Preference, error)
	Save(ctx context.Context, userID uuid.UUID, req *dto.PreferenceRequest) (*models.Preference, error)
}

type PreferenceHandler struct {
	prefService PreferenceService
	logger      *zap.Logger
}

func NewPreferenceHandler(prefService PreferenceService, logger *zap.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		prefService: prefService,
		logger:      logger,
	}
}

// GetPreferences godoc
// @Summary Get preferences
// @Description Get the caller's preference profile; null when none has been saved
// @Tags preferences
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.PreferenceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/preferences [get]
func (h *PreferenceHandler) GetPreferences(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	pref, err := h.prefService.Get(c.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrPreferencesNotFound) {
			return c.JSON(nil)
		}
		h.logger.Error("Failed to load preferences", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load preferences")
	}

	return c.JSON(toPreferenceResponse(pref))
}

// SavePreferences godoc
// @Summary Save preferences
// @Description Create or overwrite the caller's preference profile
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body dto.PreferenceRequest true "Preference profile"
// @Security Bearer
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/preferences [post]
func (h *PreferenceHandler) SavePreferences(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.PreferenceRequest
	if msg := bindRequest(c, &req); msg != "" {
		return errorResponse(c, fiber.StatusBadRequest, msg)
	}

	pref, err := h.prefService.Save(c.Context(), user.ID, &req)
	if err != nil {
		h.logger.Error("Failed to save preferences", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to save preferences")
	}

	return c.JSON(toPreferenceResponse(pref))
}
