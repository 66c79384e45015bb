package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hustle-finder/internal/dto"
	"hustle-finder/internal/models"
	"hustle-finder/internal/service"
	"hustle-finder/pkg/middleware"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testUserID = uuid.MustParse("0b0c9a3e-6a55-4f5b-9c44-0e3a5e1f2d11")

type fakeAuthService struct {
	err error
}

func (f *fakeAuthService) Register(_ context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AuthResponse{AccessToken: "a", TokenType: "Bearer", User: dto.UserResponse{Email: req.Email}}, nil
}

func (f *fakeAuthService) Login(context.Context, *dto.LoginRequest) (*dto.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AuthResponse{AccessToken: "a"}, nil
}

func (f *fakeAuthService) RefreshToken(context.Context, string) (*dto.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AuthResponse{AccessToken: "b"}, nil
}

type fakePreferenceService struct {
	pref  *models.Preference
	err   error
	saved *dto.PreferenceRequest
}

func (f *fakePreferenceService) Get(context.Context, uuid.UUID) (*models.Preference, error) {
	return f.pref, f.err
}

func (f *fakePreferenceService) Save(_ context.Context, userID uuid.UUID, req *dto.PreferenceRequest) (*models.Preference, error) {
	f.saved = req
	return &models.Preference{
		UserID:         userID,
		Country:        req.Country,
		City:           req.City,
		Interests:      req.Interests,
		AvailableHours: req.AvailableHours,
		Language:       "en",
	}, nil
}

type fakeRecommendationService struct {
	rec     *models.Recommendation
	err     error
	gotUser *service.Identity
	feed    []*models.CommunityRecommendation
	results []models.Hustle
}

func (f *fakeRecommendationService) Generate(_ context.Context, user *service.Identity) (*models.Recommendation, error) {
	f.gotUser = user
	if user == nil {
		return nil, service.ErrUnauthenticated
	}
	return f.rec, f.err
}

func (f *fakeRecommendationService) List(_ context.Context, user *service.Identity) ([]*models.Recommendation, error) {
	if user == nil {
		return nil, service.ErrUnauthenticated
	}
	return []*models.Recommendation{f.rec}, f.err
}

func (f *fakeRecommendationService) Community(context.Context) ([]*models.CommunityRecommendation, error) {
	return f.feed, f.err
}

func (f *fakeRecommendationService) Search(_ context.Context, user *service.Identity, _, _ string) ([]models.Hustle, error) {
	if user == nil {
		return nil, service.ErrUnauthenticated
	}
	return f.results, nil
}

// withUser stands in for the JWT middleware.
func withUser(c *fiber.Ctx) error {
	c.Locals(middleware.LocalUserID, testUserID.String())
	c.Locals(middleware.LocalUserName, "Sara")
	return c.Next()
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		svcErr  error
		status  int
		message string
	}{
		{name: "created", body: `{"email":"a@example.com","password":"secret1","confirmPassword":"secret1"}`, status: http.StatusCreated},
		{name: "missing fields", body: `{"email":"a@example.com"}`, status: http.StatusBadRequest, message: "password is required"},
		{name: "malformed", body: `{`, status: http.StatusBadRequest, message: "Invalid request body"},
		{name: "mismatch", body: `{"email":"a@example.com","password":"secret1","confirmPassword":"secret2"}`, svcErr: service.ErrPasswordMismatch, status: http.StatusBadRequest, message: "Passwords do not match"},
		{name: "exists", body: `{"email":"a@example.com","password":"secret1","confirmPassword":"secret1"}`, svcErr: service.ErrUserExists, status: http.StatusConflict, message: "Email already in use"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			h := NewAuthHandler(&fakeAuthService{err: tt.svcErr}, zaptest.NewLogger(t))
			app.Post("/register", h.Register)

			status, body := do(t, app, http.MethodPost, "/register", tt.body)

			assert.Equal(t, tt.status, status)
			if tt.message != "" {
				assert.Contains(t, body, tt.message)
			}
		})
	}
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	app := newApp()
	h := NewAuthHandler(&fakeAuthService{err: service.ErrInvalidCredentials}, zaptest.NewLogger(t))
	app.Post("/login", h.Login)

	status, body := do(t, app, http.MethodPost, "/login", `{"email":"a@example.com","password":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, body)
}

func TestPreferenceHandler_GetReturnsNullWhenMissing(t *testing.T) {
	app := newApp()
	h := NewPreferenceHandler(&fakePreferenceService{err: service.ErrPreferencesNotFound}, zaptest.NewLogger(t))
	app.Get("/preferences", withUser, h.GetPreferences)

	status, body := do(t, app, http.MethodGet, "/preferences", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", body)
}

func TestPreferenceHandler_RequiresUser(t *testing.T) {
	app := newApp()
	h := NewPreferenceHandler(&fakePreferenceService{}, zaptest.NewLogger(t))
	app.Get("/preferences", h.GetPreferences)

	status, _ := do(t, app, http.MethodGet, "/preferences", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestPreferenceHandler_Save(t *testing.T) {
	svc := &fakePreferenceService{}
	app := newApp()
	h := NewPreferenceHandler(svc, zaptest.NewLogger(t))
	app.Post("/preferences", withUser, h.SavePreferences)

	status, body := do(t, app, http.MethodPost, "/preferences",
		`{"country":"Ethiopia","city":"Addis Ababa","interests":"[\"Writing\",\"Design\"]","availableHours":"5-10"}`)

	require.Equal(t, http.StatusOK, status, body)
	require.NotNil(t, svc.saved)
	assert.Equal(t, dto.InterestList{"Writing", "Design"}, svc.saved.Interests)

	var resp dto.PreferenceResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, testUserID.String(), resp.UserID)
	assert.Equal(t, []string{"Writing", "Design"}, resp.Interests)
}

func TestPreferenceHandler_SaveRejectsUnknownBucket(t *testing.T) {
	app := newApp()
	h := NewPreferenceHandler(&fakePreferenceService{}, zaptest.NewLogger(t))
	app.Post("/preferences", withUser, h.SavePreferences)

	status, body := do(t, app, http.MethodPost, "/preferences",
		`{"country":"Ethiopia","city":"Addis Ababa","interests":["Writing"],"availableHours":"40+"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "availableHours")
}

func TestPreferenceHandler_SaveRejectsBlankLocation(t *testing.T) {
	svc := &fakePreferenceService{}
	app := newApp()
	h := NewPreferenceHandler(svc, zaptest.NewLogger(t))
	app.Post("/preferences", withUser, h.SavePreferences)

	status, body := do(t, app, http.MethodPost, "/preferences",
		`{"country":"Ethiopia","city":"   ","interests":["Writing"],"availableHours":"5-10"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "city must not be blank")
	assert.Nil(t, svc.saved)
}

func TestRecommendationHandler_Generate(t *testing.T) {
	owner := testUserID
	rec := &models.Recommendation{
		ID:          uuid.New(),
		UserID:      &owner,
		Hustle:      models.Hustle{Title: "Local Design Starter", Source: "Offline fallback"},
		AIGenerated: true,
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name   string
		auth   bool
		err    error
		status int
	}{
		{name: "created", auth: true, status: http.StatusCreated},
		{name: "anonymous", auth: false, status: http.StatusUnauthorized},
		{name: "no preferences", auth: true, err: service.ErrPreferencesNotFound, status: http.StatusNotFound},
		{name: "storage failure", auth: true, err: assert.AnError, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRecommendationService{rec: rec, err: tt.err}
			app := newApp()
			h := NewRecommendationHandler(svc, zaptest.NewLogger(t))
			if tt.auth {
				app.Post("/generate", withUser, h.GenerateRecommendation)
			} else {
				app.Post("/generate", h.GenerateRecommendation)
			}

			status, body := do(t, app, http.MethodPost, "/generate", "")

			assert.Equal(t, tt.status, status, body)
			if tt.status == http.StatusCreated {
				var resp dto.RecommendationResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.True(t, resp.AIGenerated)
				require.NotNil(t, resp.UserID)
				assert.Equal(t, testUserID.String(), *resp.UserID)
				assert.Equal(t, "Sara", svc.gotUser.Name)
			}
		})
	}
}

func TestRecommendationHandler_Search(t *testing.T) {
	svc := &fakeRecommendationService{results: []models.Hustle{{Title: "Logo Design", Source: "Model: m"}}}
	app := newApp()
	h := NewRecommendationHandler(svc, zaptest.NewLogger(t))
	app.Get("/search", withUser, h.SearchRecommendations)

	status, _ := do(t, app, http.MethodGet, "/search", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := do(t, app, http.MethodGet, "/search?q=design&location=Addis%20Ababa", "")
	require.Equal(t, http.StatusOK, status)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "Addis Ababa", resp.Location)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Logo Design", resp.Results[0].Title)
}

func TestRecommendationHandler_Community(t *testing.T) {
	owner := testUserID
	svc := &fakeRecommendationService{feed: []*models.CommunityRecommendation{
		{
			Recommendation: models.Recommendation{ID: uuid.New(), UserID: &owner, Hustle: models.Hustle{Title: "Tutoring"}},
			UserName:       "Anonymous",
		},
	}}
	app := newApp()
	h := NewRecommendationHandler(svc, zaptest.NewLogger(t))
	app.Get("/community-hustles", h.CommunityHustles)

	status, body := do(t, app, http.MethodGet, "/community-hustles", "")
	require.Equal(t, http.StatusOK, status)

	var resp []dto.CommunityRecommendationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Anonymous", resp[0].UserName)
	assert.Equal(t, "Tutoring", resp[0].Title)
}
