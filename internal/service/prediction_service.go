package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agridash/internal/dto"
	"agridash/internal/fertilizer"
	"agridash/internal/metrics"

	"go.uber.org/zap"
)

// ModelUnavailableError carries the operator-facing reason prediction is disabled.
type ModelUnavailableError struct {
	Message string
}

func (e *ModelUnavailableError) Error() string { return e.Message }

func (e *ModelUnavailableError) Unwrap() error { return fertilizer.ErrModelUnavailable }

type PredictionService struct {
	catalog   *fertilizer.Catalog
	predictor *fertilizer.Predictor
	cfg       fertilizer.Config
	metrics   *metrics.Collector
	logger    *zap.Logger
}

// NewPredictionService wraps predictor, which is nil when the model failed to load.
func NewPredictionService(catalog *fertilizer.Catalog, predictor *fertilizer.Predictor, cfg fertilizer.Config, m *metrics.Collector, logger *zap.Logger) *PredictionService {
	m.SetModelAvailable(predictor != nil)
	return &PredictionService{
		catalog:   catalog,
		predictor: predictor,
		cfg:       cfg,
		metrics:   m,
		logger:    logger,
	}
}

func (s *PredictionService) Available() bool {
	return s.predictor != nil
}

func (s *PredictionService) Options() *dto.PredictOptionsResponse {
	groups := s.catalog.CropGroups()
	resp := &dto.PredictOptionsResponse{
		CropGroups:   make([]dto.CropGroupResponse, 0, len(groups)),
		Regions:      s.catalog.Regions.Names(),
		Months:       s.catalog.Months.Names(),
		Ranges:       make(map[string]dto.RangeResponse),
		FeatureOrder: append([]string(nil), fertilizer.FeatureNames[:]...),
		Available:    s.Available(),
		Algorithm:    s.cfg.Variant.Algorithm(),
	}
	for _, g := range groups {
		resp.CropGroups = append(resp.CropGroups, dto.CropGroupResponse{Name: g.Name, Crops: g.Crops})
	}
	for name, r := range fertilizer.Ranges() {
		resp.Ranges[name] = dto.RangeResponse{Min: r.Min, Max: r.Max}
	}
	return resp
}

// CheckAvailable returns a *ModelUnavailableError when no model is loaded.
// Callers run it before decoding the request body.
func (s *PredictionService) CheckAvailable() error {
	if s.predictor != nil {
		return nil
	}
	s.metrics.ObservePrediction(string(s.cfg.Variant), "unavailable", 0)
	return &ModelUnavailableError{Message: s.cfg.UnavailableMessage()}
}

// Predict checks model availability first, then validates the request and classifies it.
func (s *PredictionService) Predict(ctx context.Context, req *dto.PredictRequest) (*dto.PredictResponse, error) {
	algorithm := string(s.cfg.Variant)
	if err := s.CheckAvailable(); err != nil {
		return nil, err
	}

	raw, err := rawInput(req)
	if err != nil {
		s.metrics.ObservePrediction(algorithm, "invalid", 0)
		return nil, err
	}

	start := time.Now()
	res, err := s.predictor.Recommend(raw)
	switch {
	case fertilizer.IsInputError(err):
		s.metrics.ObservePrediction(algorithm, "invalid", 0)
		return nil, err
	case err != nil:
		s.metrics.ObservePrediction(algorithm, "error", 0)
		s.logger.Error("Prediction failed", zap.Error(err))
		if !errors.Is(err, fertilizer.ErrInternalPrediction) {
			err = fmt.Errorf("%w: %w", fertilizer.ErrInternalPrediction, err)
		}
		return nil, err
	}
	s.metrics.ObservePrediction(algorithm, "ok", time.Since(start))

	if res.Fallback {
		s.metrics.ObserveFallback()
		s.logger.Warn("Predicted class outside fertilizer table",
			zap.Int("class_index", res.ClassIndex),
			zap.Int("table_size", len(s.catalog.Fertilizers())),
		)
	}

	s.logger.Debug("Fertilizer predicted",
		zap.String("crop", raw.Crop),
		zap.String("fertilizer", res.Fertilizer),
		zap.Float64("confidence", res.Confidence),
	)

	return &dto.PredictResponse{
		Fertilizer:     res.Fertilizer,
		FertilizerType: res.Category,
		Confidence:     res.Confidence,
		Algorithm:      res.Algorithm,
	}, nil
}

func rawInput(req *dto.PredictRequest) (fertilizer.RawInput, error) {
	var raw fertilizer.RawInput

	strs := []struct {
		name string
		src  *string
		dst  *string
	}{
		{"crop", req.Crop, &raw.Crop},
		{"region", req.Region, &raw.Region},
		{"month", req.Month, &raw.Month},
	}
	for _, f := range strs {
		if f.src == nil {
			return raw, invalid(f.name, "Missing required field: %s", f.name)
		}
		*f.dst = *f.src
	}

	nums := []struct {
		name string
		src  *dto.Float
		dst  *float64
	}{
		{"temperature", req.Temperature, &raw.Temperature},
		{"N", req.N, &raw.Nitrogen},
		{"P", req.P, &raw.Phosphorus},
		{"K", req.K, &raw.Potassium},
		{"humidity", req.Humidity, &raw.Humidity},
		{"ph", req.PH, &raw.PH},
		{"moisture", req.Moisture, &raw.Moisture},
	}
	for _, f := range nums {
		if f.src == nil {
			return raw, invalid(f.name, "Missing required field: %s", f.name)
		}
		*f.dst = float64(*f.src)
	}

	return raw, nil
}
