package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"agridash/internal/dto"
	"agridash/internal/models"
	"agridash/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CropService struct {
	cropRepo CropStore
	logger   *zap.Logger
}

func NewCropService(cropRepo CropStore, logger *zap.Logger) *CropService {
	return &CropService{
		cropRepo: cropRepo,
		logger:   logger,
	}
}

func (s *CropService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCropRequest) (*dto.CropResponse, error) {
	cropType := strings.TrimSpace(req.CropType)
	if cropType == "" {
		return nil, invalid("crop_type", "Crop type is required.")
	}
	if math.IsNaN(req.Acre) || req.Acre <= 0 {
		return nil, invalid("acre", "Acreage must be a positive number.")
	}

	crop := &models.Crop{
		ID:        uuid.New(),
		UserID:    userID,
		Acre:      req.Acre,
		CropType:  cropType,
		Stage:     strings.TrimSpace(req.Stage),
		CreatedAt: time.Now(),
	}
	if strings.TrimSpace(req.PlantingDate) != "" {
		d, err := parseDate("planting_date", req.PlantingDate)
		if err != nil {
			return nil, err
		}
		crop.PlantingDate = &d
	}

	if err := s.cropRepo.Create(ctx, crop); err != nil {
		return nil, err
	}

	s.logger.Info("Crop added",
		zap.String("user_id", userID.String()),
		zap.String("crop_type", crop.CropType),
		zap.Float64("acre", crop.Acre),
	)
	resp := toCropResponse(crop)
	return &resp, nil
}

func (s *CropService) List(ctx context.Context, userID uuid.UUID) ([]dto.CropResponse, error) {
	crops, err := s.cropRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CropResponse, 0, len(crops))
	for _, c := range crops {
		out = append(out, toCropResponse(c))
	}
	return out, nil
}

func (s *CropService) Delete(ctx context.Context, userID, cropID uuid.UUID) error {
	if err := s.cropRepo.Delete(ctx, userID, cropID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCropNotFound
		}
		return err
	}
	s.logger.Info("Crop deleted", zap.String("user_id", userID.String()), zap.String("crop_id", cropID.String()))
	return nil
}

// TotalAcreage sums the acreage of crops.
func TotalAcreage(crops []dto.CropResponse) float64 {
	var total float64
	for _, c := range crops {
		total += c.Acre
	}
	return total
}
