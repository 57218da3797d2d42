package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"agridash/internal/dto"
	"agridash/internal/repository"
	"agridash/internal/service"
	"agridash/pkg/auth"
	"agridash/pkg/config"
	"agridash/pkg/logger"
	"agridash/pkg/mailer"
	"agridash/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoData []byte

type seedFile struct {
	Farmers []seedFarmer `json:"farmers"`
}

type seedFarmer struct {
	dto.RegisterRequest
	Crops     []dto.CreateCropRequest     `json:"crops"`
	SoilTests []dto.CreateSoilTestRequest `json:"soil_tests"`
}

// parseSeed reads YAML through the request DTOs' json tags.
func parseSeed(data []byte) (*seedFile, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	var seed seedFile
	if err := json.Unmarshal(buf, &seed); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &seed, nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Mode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	data := demoData
	if len(os.Args) > 1 {
		data, err = os.ReadFile(os.Args[1])
		if err != nil {
			appLogger.Fatal("Failed to read seed file", zap.String("path", os.Args[1]), zap.Error(err))
		}
	}

	seed, err := parseSeed(data)
	if err != nil {
		appLogger.Fatal("Failed to parse seed file", zap.Error(err))
	}

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	cropRepo := repository.NewCropRepository(db, appLogger)
	soilRepo := repository.NewSoilTestRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)
	authService := service.NewAuthService(userRepo, jwtManager, mailer.NewLogMailer(appLogger), cfg.Server.PublicURL, appLogger)
	cropService := service.NewCropService(cropRepo, appLogger)
	soilService := service.NewSoilService(soilRepo, cropRepo, nil, 0, nil, appLogger)

	appLogger.Info("Starting database seeding...", zap.Int("farmers", len(seed.Farmers)))

	for i := range seed.Farmers {
		if err := seedFarmerData(ctx, &seed.Farmers[i], authService, cropService, soilService, appLogger); err != nil {
			appLogger.Fatal("Failed to seed farmer", zap.String("username", seed.Farmers[i].Username), zap.Error(err))
		}
	}

	appLogger.Info("Database seeding completed successfully!")
}

// seedFarmerData registers one farmer with their crops and soil tests.
// Farmers that already exist are skipped so the command can be rerun.
func seedFarmerData(
	ctx context.Context,
	farmer *seedFarmer,
	authService *service.AuthService,
	cropService *service.CropService,
	soilService *service.SoilService,
	logger *zap.Logger,
) error {
	if farmer.ConfirmPassword == "" {
		farmer.ConfirmPassword = farmer.Password
	}

	resp, err := authService.Register(ctx, &farmer.RegisterRequest)
	if errors.Is(err, service.ErrUserExists) {
		logger.Info("Farmer already exists, skipping", zap.String("username", farmer.Username))
		return nil
	}
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	userID, err := uuid.Parse(resp.User.ID)
	if err != nil {
		return fmt.Errorf("parse user id: %w", err)
	}

	for i := range farmer.Crops {
		if _, err := cropService.Create(ctx, userID, &farmer.Crops[i]); err != nil {
			return fmt.Errorf("crop %s: %w", farmer.Crops[i].CropType, err)
		}
	}
	for i := range farmer.SoilTests {
		if _, err := soilService.Create(ctx, userID, &farmer.SoilTests[i]); err != nil {
			return fmt.Errorf("soil test %s: %w", farmer.SoilTests[i].TestDate, err)
		}
	}

	logger.Info("Farmer seeded",
		zap.String("username", farmer.Username),
		zap.Int("crops", len(farmer.Crops)),
		zap.Int("soil_tests", len(farmer.SoilTests)),
	)
	return nil
}
