package fertilizer

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
)

// Result is one fertilizer recommendation.
type Result struct {
	Fertilizer string
	Category   string
	// Confidence is a percentage in [0, 100].
	Confidence float64
	Algorithm  string
	ClassIndex int
	// Fallback is set when the class index fell outside the fertilizer table.
	Fallback bool
}

// Config locates the fitted model artifacts.
type Config struct {
	Variant    Variant
	ModelPath  string
	ScalerPath string
}

// UnavailableMessage tells an operator which artifacts are missing.
func (c Config) UnavailableMessage() string {
	return fmt.Sprintf("%s model is not available. Please ensure %s and %s exist.",
		c.Variant.Label(), filepath.Base(c.ModelPath), filepath.Base(c.ScalerPath))
}

// Predictor turns validated soil and climate readings into a recommendation.
// It is immutable after construction and safe for concurrent use.
type Predictor struct {
	catalog *Catalog
	scaler  *Scaler
	model   Model
}

func NewPredictor(catalog *Catalog, scaler *Scaler, model Model) (*Predictor, error) {
	if catalog == nil || scaler == nil || model == nil {
		return nil, fmt.Errorf("%w: predictor needs a catalog, scaler and model", ErrModelUnavailable)
	}
	if model.Dim() != FeatureCount {
		return nil, fmt.Errorf("%w: model expects %d features, want %d", ErrModelUnavailable, model.Dim(), FeatureCount)
	}
	return &Predictor{catalog: catalog, scaler: scaler, model: model}, nil
}

// Load reads the scaler and model named by cfg. Every failure wraps ErrModelUnavailable.
func Load(catalog *Catalog, cfg Config) (*Predictor, error) {
	scaler, err := LoadScaler(cfg.ScalerPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	var model Model
	switch cfg.Variant {
	case NearestNeighbor:
		model, err = LoadKNN(cfg.ModelPath)
	case Classifier:
		model, err = LoadNetwork(cfg.ModelPath)
	default:
		err = fmt.Errorf("unknown model variant %q", cfg.Variant)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	return NewPredictor(catalog, scaler, model)
}

func (p *Predictor) Catalog() *Catalog { return p.catalog }

func (p *Predictor) Variant() Variant { return p.model.Variant() }

// BuildFeatureVector validates raw against this predictor's catalog.
func (p *Predictor) BuildFeatureVector(raw RawInput) (FeatureVector, error) {
	return BuildFeatureVector(p.catalog, raw)
}

// Predict scales v, classifies it and resolves the class to a fertilizer.
func (p *Predictor) Predict(v FeatureVector) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, fmt.Errorf("%w: %v", ErrInternalPrediction, r)
		}
	}()

	index, confidence, err := p.model.Classify(p.scaler.Transform(v))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInternalPrediction, err)
	}
	if math.IsNaN(confidence) {
		return Result{}, fmt.Errorf("%w: confidence is NaN", ErrInternalPrediction)
	}

	name, ok := p.catalog.LookupFertilizer(index)
	return Result{
		Fertilizer: name,
		Category:   Categorize(name),
		Confidence: clamp(confidence, 0, 1) * 100,
		Algorithm:  p.model.Variant().Algorithm(),
		ClassIndex: index,
		Fallback:   !ok,
	}, nil
}

// Recommend is BuildFeatureVector followed by Predict.
func (p *Predictor) Recommend(raw RawInput) (Result, error) {
	v, err := p.BuildFeatureVector(raw)
	if err != nil {
		return Result{}, err
	}
	return p.Predict(v)
}

// IsInputError reports whether err came from request validation rather than the model.
func IsInputError(err error) bool {
	return errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrUnknownCategory)
}
