package handlers

import (
	"context"
	"errors"

	"hustle-finder/internal/dto"
	"hustle-finder/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
}

type AuthHandler struct {
	authService AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user with email, password and an optional display name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /user/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if msg := bindRequest(c, &req); msg != "" {
		return errorResponse(c, fiber.StatusBadRequest, msg)
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			return errorResponse(c, fiber.StatusBadRequest, "Passwords do not match")
		case errors.Is(err, service.ErrUserExists):
			return errorResponse(c, fiber.StatusConflict, "Email already in use")
		}
		h.logger.Error("Registration failed", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login godoc
// @Summary Login user
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /user/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if msg := bindRequest(c, &req); msg != "" {
		return errorResponse(c, fiber.StatusBadRequest, msg)
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return errorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.Error("Login failed", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(resp)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Description Refresh access token using refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /user/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if msg := bindRequest(c, &req); msg != "" {
		return errorResponse(c, fiber.StatusBadRequest, msg)
	}

	resp, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrUserNotFound) {
			return errorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token")
		}
		h.logger.Error("Token refresh failed", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Token refresh failed")
	}

	return c.JSON(resp)
}
