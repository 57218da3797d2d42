package service

import (
	"context"
	"errors"

	"agridash/internal/dto"
	"agridash/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DashboardService struct {
	userRepo UserStore
	crops    *CropService
	soil     *SoilService
	weather  *WeatherService
	logger   *zap.Logger
}

func NewDashboardService(userRepo UserStore, crops *CropService, soil *SoilService, weather *WeatherService, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		userRepo: userRepo,
		crops:    crops,
		soil:     soil,
		weather:  weather,
		logger:   logger,
	}
}

// Get assembles the dashboard. The recommendation covers the most recently
// planted crop and is omitted without crops or soil tests.
func (s *DashboardService) Get(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	crops, err := s.crops.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Profile:      toProfileResponse(user),
		Crops:        crops,
		TotalAcreage: TotalAcreage(crops),
		LastTestDate: "N/A",
		Weather:      s.weather.ForLocation(user.Location),
	}

	latest, err := s.soil.Latest(ctx, userID)
	switch {
	case errors.Is(err, ErrNoSoilTest):
		return resp, nil
	case err != nil:
		return nil, err
	}

	test := toSoilTestResponse(latest)
	resp.LatestSoilTest = &test
	resp.LastTestDate = test.TestDate
	resp.SoilGrades = Grades(latest)
	if len(crops) > 0 {
		resp.Recommendation = s.soil.recommendFor(ctx, crops[0].CropType, latest, false)
	}
	return resp, nil
}
