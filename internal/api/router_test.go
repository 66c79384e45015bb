package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hustle-finder/internal/api/handlers"
	"hustle-finder/internal/dto"
	"hustle-finder/internal/models"
	"hustle-finder/internal/service"
	"hustle-finder/pkg/auth"
	"hustle-finder/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubAuth struct{}

func (stubAuth) Register(context.Context, *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return &dto.AuthResponse{}, nil
}
func (stubAuth) Login(context.Context, *dto.LoginRequest) (*dto.AuthResponse, error) {
	return &dto.AuthResponse{}, nil
}
func (stubAuth) RefreshToken(context.Context, string) (*dto.AuthResponse, error) {
	return &dto.AuthResponse{}, nil
}

type stubPrefs struct{}

func (stubPrefs) Get(context.Context, uuid.UUID) (*models.Preference, error) {
	return nil, service.ErrPreferencesNotFound
}
func (stubPrefs) Save(context.Context, uuid.UUID, *dto.PreferenceRequest) (*models.Preference, error) {
	return &models.Preference{}, nil
}

type stubRecs struct{}

func (stubRecs) Generate(context.Context, *service.Identity) (*models.Recommendation, error) {
	return nil, service.ErrPreferencesNotFound
}
func (stubRecs) List(context.Context, *service.Identity) ([]*models.Recommendation, error) {
	return nil, nil
}
func (stubRecs) Community(context.Context) ([]*models.CommunityRecommendation, error) {
	return nil, nil
}
func (stubRecs) Search(context.Context, *service.Identity, string, string) ([]models.Hustle, error) {
	return nil, nil
}

func TestSetupRouter(t *testing.T) {
	logger := zaptest.NewLogger(t)
	jwtManager := auth.NewJWTManager("secret", time.Hour, time.Hour)
	app := SetupRouter(
		&config.ServerConfig{},
		handlers.NewAuthHandler(stubAuth{}, logger),
		handlers.NewPreferenceHandler(stubPrefs{}, logger),
		handlers.NewRecommendationHandler(stubRecs{}, logger),
		jwtManager,
		logger,
	)

	token, err := jwtManager.GenerateToken(uuid.NewString(), "Sara", "sara@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{name: "health", method: http.MethodGet, path: "/health", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", status: http.StatusOK},
		{name: "catalog is public", method: http.MethodGet, path: "/api/v1/catalog", status: http.StatusOK},
		{name: "community is public", method: http.MethodGet, path: "/api/v1/community-hustles", status: http.StatusOK},
		{name: "preferences need auth", method: http.MethodGet, path: "/api/v1/preferences", status: http.StatusUnauthorized},
		{name: "preferences with token", method: http.MethodGet, path: "/api/v1/preferences", token: token, status: http.StatusOK},
		{name: "generate needs auth", method: http.MethodPost, path: "/api/v1/recommendations/generate", status: http.StatusUnauthorized},
		{name: "generate without preferences", method: http.MethodPost, path: "/api/v1/recommendations/generate", token: token, status: http.StatusNotFound},
		{name: "list with token", method: http.MethodGet, path: "/api/v1/recommendations", token: token, status: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			_, _ = io.ReadAll(resp.Body)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
