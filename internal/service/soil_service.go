package service

import (
	"context"
	"math"
	"strings"
	"time"

	"agridash/internal/dto"
	"agridash/internal/metrics"
	"agridash/internal/models"
	"agridash/internal/soil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultAdviceTimeout = 15 * time.Second

// Advisor explains a rule engine result in plain language.
type Advisor interface {
	Advise(ctx context.Context, crop string, test *models.SoilTest, rec *soil.Recommendation) (string, error)
}

type SoilService struct {
	soilRepo      SoilTestStore
	cropRepo      CropStore
	advisor       Advisor
	adviceTimeout time.Duration
	metrics       *metrics.Collector
	logger        *zap.Logger
}

// NewSoilService builds the service. advisor may be nil.
func NewSoilService(soilRepo SoilTestStore, cropRepo CropStore, advisor Advisor, adviceTimeout time.Duration, m *metrics.Collector, logger *zap.Logger) *SoilService {
	if adviceTimeout <= 0 {
		adviceTimeout = defaultAdviceTimeout
	}
	return &SoilService{
		soilRepo:      soilRepo,
		cropRepo:      cropRepo,
		advisor:       advisor,
		adviceTimeout: adviceTimeout,
		metrics:       m,
		logger:        logger,
	}
}

func (s *SoilService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSoilTestRequest) (*dto.SoilTestResponse, error) {
	testDate, err := parseDate("test_date", req.TestDate)
	if err != nil {
		return nil, err
	}

	levels := make([]soil.Level, 3)
	for i, f := range []struct{ name, value string }{
		{"nitrogen_level", req.NitrogenLevel},
		{"phosphorus_level", req.PhosphorusLevel},
		{"potassium_level", req.PotassiumLevel},
	} {
		l, err := soil.ParseLevel(f.value)
		if err != nil {
			return nil, invalid(f.name, "Invalid %s: must be one of Very Low, Low, Medium, High, Very High.", f.name)
		}
		levels[i] = l
	}

	if math.IsNaN(req.PHLevel) || req.PHLevel < 0 || req.PHLevel > 14 {
		return nil, invalid("ph_level", "pH Level must be a number between 0 and 14.")
	}

	test := &models.SoilTest{
		ID:              uuid.New(),
		UserID:          userID,
		TestDate:        testDate,
		NitrogenLevel:   levels[0],
		PhosphorusLevel: levels[1],
		PotassiumLevel:  levels[2],
		PHLevel:         req.PHLevel,
		Notes:           strings.TrimSpace(req.Notes),
		CreatedAt:       time.Now(),
	}
	if err := s.soilRepo.Create(ctx, test); err != nil {
		return nil, err
	}

	s.logger.Info("Soil test added",
		zap.String("user_id", userID.String()),
		zap.String("test_date", req.TestDate),
	)
	resp := toSoilTestResponse(test)
	return &resp, nil
}

// List returns the user's soil tests latest first.
func (s *SoilService) List(ctx context.Context, userID uuid.UUID) ([]dto.SoilTestResponse, error) {
	tests, err := s.soilRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SoilTestResponse, 0, len(tests))
	for _, t := range tests {
		out = append(out, toSoilTestResponse(t))
	}
	return out, nil
}

// Latest returns the most recent soil test or ErrNoSoilTest.
func (s *SoilService) Latest(ctx context.Context, userID uuid.UUID) (*models.SoilTest, error) {
	tests, err := s.soilRepo.ListByUser(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(tests) == 0 {
		return nil, ErrNoSoilTest
	}
	return tests[0], nil
}

// Recommend runs the rule engine on the latest soil test. An empty crop
// defaults to the user's most recently planted crop.
func (s *SoilService) Recommend(ctx context.Context, userID uuid.UUID, crop string, withAdvice bool) (*dto.RecommendationResponse, error) {
	crop = strings.TrimSpace(crop)
	if crop == "" {
		crops, err := s.cropRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(crops) == 0 {
			return nil, invalid("crop", "Crop is required when no crops are registered.")
		}
		crop = crops[0].CropType
	}

	latest, err := s.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.recommendFor(ctx, crop, latest, withAdvice), nil
}

func (s *SoilService) recommendFor(ctx context.Context, crop string, test *models.SoilTest, withAdvice bool) *dto.RecommendationResponse {
	reading := test.Reading()
	rec := soil.Recommend(&reading, crop)
	s.metrics.ObserveRecommendation(string(rec.Status))

	resp := &dto.RecommendationResponse{
		Crop:           titleCase(crop),
		Status:         string(rec.Status),
		Message:        rec.Message,
		Recommendation: rec.Recommendation,
		TestDate:       test.TestDate.Format(soil.DateLayout),
	}

	if withAdvice && s.advisor != nil {
		adviceCtx, cancel := context.WithTimeout(ctx, s.adviceTimeout)
		defer cancel()
		advice, err := s.advisor.Advise(adviceCtx, crop, test, rec)
		if err != nil {
			s.logger.Warn("Advisor unavailable, returning rule engine result only", zap.Error(err))
		} else {
			resp.Advice = sanitizeUTF8(strings.TrimSpace(advice))
		}
	}
	return resp
}

// Grades maps each nutrient level of test to a display grade.
func Grades(test *models.SoilTest) *dto.SoilGrades {
	return &dto.SoilGrades{
		Nitrogen:   soil.Grade(test.NitrogenLevel),
		Phosphorus: soil.Grade(test.PhosphorusLevel),
		Potassium:  soil.Grade(test.PotassiumLevel),
	}
}
