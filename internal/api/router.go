package api

import (
	"net/http"

	"agridash/docs"
	"agridash/internal/api/handlers"
	"agridash/internal/metrics"
	"agridash/pkg/auth"
	"agridash/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Profile   *handlers.ProfileHandler
	Crop      *handlers.CropHandler
	Soil      *handlers.SoilHandler
	Predict   *handlers.PredictHandler
	Dashboard *handlers.DashboardHandler
}

func SetupRouter(
	h Handlers,
	jwtManager *auth.JWTManager,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
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

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", h.Predict.Health)
	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metricsHandler(collector, gatherer, appLogger)))
	}

	// Auth routes (public)
	authGroup := app.Group("/user").Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/forgot-password", h.Auth.ForgotPassword)
	authGroup.Post("/reset-password", h.Auth.ResetPassword)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Get("/profile", h.Profile.GetProfile)
	protected.Put("/profile", h.Profile.UpdateProfile)
	protected.Get("/weather", h.Profile.Weather)

	crops := protected.Group("/crops")
	crops.Get("", h.Crop.ListCrops)
	crops.Post("", h.Crop.CreateCrop)
	crops.Delete("/:id", h.Crop.DeleteCrop)

	soilTests := protected.Group("/soil-tests")
	soilTests.Get("", h.Soil.ListSoilTests)
	soilTests.Post("", h.Soil.CreateSoilTest)
	protected.Get("/recommendation", h.Soil.Recommendation)

	protected.Get("/predict/options", h.Predict.Options)
	protected.Post("/predict", h.Predict.Predict)

	protected.Get("/dashboard", h.Dashboard.Dashboard)

	return app
}

// metricsHandler refreshes the row gauges before every scrape.
func metricsHandler(collector *metrics.Collector, gatherer prometheus.Gatherer, appLogger *zap.Logger) http.Handler {
	next := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := collector.Refresh(r.Context()); err != nil {
			appLogger.Warn("Failed to refresh row gauges", zap.Error(err))
		}
		next.ServeHTTP(w, r)
	})
}
