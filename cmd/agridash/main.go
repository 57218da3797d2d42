package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agridash/internal/api"
	"agridash/internal/api/handlers"
	"agridash/internal/fertilizer"
	"agridash/internal/metrics"
	"agridash/internal/repository"
	"agridash/internal/service"
	"agridash/pkg/auth"
	"agridash/pkg/config"
	"agridash/pkg/logger"
	"agridash/pkg/mailer"
	"agridash/pkg/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title AgriDash API
// @version 1.0
// @description Farm dashboard: soil tests, rule-based recommendations and fertilizer prediction

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Mode); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting AgriDash service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	cropRepo := repository.NewCropRepository(db, appLogger)
	soilRepo := repository.NewSoilTestRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	mail, err := mailer.New(cfg.Mail, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize mailer", zap.Error(err))
	}

	// Fertilizer model. A missing artifact disables /predict, not the server.
	catalog, err := fertilizer.LoadCatalog(cfg.Model.CatalogPath)
	if err != nil {
		appLogger.Fatal("Failed to load fertilizer catalog", zap.Error(err))
	}
	variant, err := fertilizer.ParseVariant(cfg.Model.Type)
	if err != nil {
		appLogger.Fatal("Invalid MODEL_TYPE", zap.Error(err))
	}
	modelCfg := fertilizer.Config{
		Variant:    variant,
		ModelPath:  cfg.Model.ModelPath,
		ScalerPath: cfg.Model.ScalerPath,
	}
	predictor, err := fertilizer.Load(catalog, modelCfg)
	if err != nil {
		appLogger.Warn("Fertilizer model not loaded, predictions disabled",
			zap.String("variant", string(variant)),
			zap.String("model_path", modelCfg.ModelPath),
			zap.String("scaler_path", modelCfg.ScalerPath),
			zap.Error(err),
		)
	} else {
		appLogger.Info("Fertilizer model loaded", zap.String("algorithm", variant.Algorithm()))
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.New(map[string]metrics.Counter{
		"users":      userRepo,
		"crops":      cropRepo,
		"soil_tests": soilRepo,
	})
	collector.Register(registry)

	// Optional GigaChat advisor
	var advisor service.Advisor
	if cfg.GigaChat.APIKey != "" {
		advisorService, err := service.NewAdvisorService(&cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Warn("Agronomy advisor disabled", zap.Error(err))
		} else {
			defer advisorService.Close()
			advisor = advisorService
		}
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, mail, cfg.Server.PublicURL, appLogger)
	profileService := service.NewProfileService(userRepo, appLogger)
	cropService := service.NewCropService(cropRepo, appLogger)
	soilService := service.NewSoilService(soilRepo, cropRepo, advisor, cfg.GigaChat.Timeout, collector, appLogger)
	weatherService := service.NewWeatherService(appLogger)
	dashboardService := service.NewDashboardService(userRepo, cropService, soilService, weatherService, appLogger)
	predictionService := service.NewPredictionService(catalog, predictor, modelCfg, collector, appLogger)

	// Setup router
	app := api.SetupRouter(api.Handlers{
		Auth:      handlers.NewAuthHandler(authService, appLogger),
		Profile:   handlers.NewProfileHandler(profileService, weatherService, appLogger),
		Crop:      handlers.NewCropHandler(cropService, appLogger),
		Soil:      handlers.NewSoilHandler(soilService, appLogger),
		Predict:   handlers.NewPredictHandler(predictionService, appLogger),
		Dashboard: handlers.NewDashboardHandler(dashboardService, appLogger),
	}, jwtManager, collector, registry, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
