package api

import (
	"hustle-finder/docs"
	"hustle-finder/internal/api/handlers"
	"hustle-finder/pkg/auth"
	"hustle-finder/pkg/config"
	"hustle-finder/pkg/middleware"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewApp returns a Fiber app with the shared JSON codec and error handler.
func NewApp(serverCfg *config.ServerConfig) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})
}

func SetupRouter(
	serverCfg *config.ServerConfig,
	authHandler *handlers.AuthHandler,
	prefHandler *handlers.PreferenceHandler,
	recHandler *handlers.RecommendationHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := NewApp(serverCfg)

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// importing docs registers the API description with swag
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	v1 := app.Group("/api/v1")

	// Public
	v1.Get("/community-hustles", recHandler.CommunityHustles)
	v1.Get("/catalog", recHandler.Catalog)

	// Protected routes
	requireAuth := middleware.AuthMiddleware(jwtManager, appLogger)

	preferences := v1.Group("/preferences", requireAuth)
	preferences.Get("", prefHandler.GetPreferences)
	preferences.Post("", prefHandler.SavePreferences)

	recommendations := v1.Group("/recommendations", requireAuth)
	recommendations.Get("", recHandler.ListRecommendations)
	recommendations.Post("/generate", recHandler.GenerateRecommendation)
	recommendations.Get("/search", recHandler.SearchRecommendations)

	appLogger.Info("Routes registered")
	return app
}
