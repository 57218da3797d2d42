package fertilizer

import (
	"fmt"
	"strings"
)

// Variant selects the classifier behind the predictor.
type Variant string

const (
	NearestNeighbor Variant = "knn"
	Classifier      Variant = "classifier"
)

func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case NearestNeighbor, "":
		return NearestNeighbor, nil
	case Classifier:
		return Classifier, nil
	default:
		return "", fmt.Errorf("unknown model variant %q", s)
	}
}

// Algorithm is the human-readable name reported with each prediction.
func (v Variant) Algorithm() string {
	if v == Classifier {
		return "Neural Network Classifier"
	}
	return "K-Nearest Neighbors (KNN)"
}

// Label is the short name used in operator-facing messages.
func (v Variant) Label() string {
	if v == Classifier {
		return "Neural classifier"
	}
	return "KNN"
}

// Model classifies a scaled feature vector.
type Model interface {
	Variant() Variant
	// Dim is the expected input width.
	Dim() int
	// Classify returns the predicted class index and a confidence in [0, 1].
	Classify(x []float64) (int, float64, error)
}
