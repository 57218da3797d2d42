package fertilizer

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// KNN is a k-nearest-neighbours classifier over scaled training samples.
type KNN struct {
	k       int
	dim     int
	samples [][]float64
	labels  []int
}

type knnFile struct {
	NNeighbors int         `json:"n_neighbors"`
	Samples    [][]float64 `json:"samples"`
	Labels     []int       `json:"labels"`
}

func NewKNN(k int, samples [][]float64, labels []int) (*KNN, error) {
	if k <= 0 {
		return nil, fmt.Errorf("knn: n_neighbors must be positive, got %d", k)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("knn: no training samples")
	}
	if len(samples) != len(labels) {
		return nil, fmt.Errorf("knn: %d samples but %d labels", len(samples), len(labels))
	}
	dim := len(samples[0])
	copied := make([][]float64, len(samples))
	for i, s := range samples {
		if len(s) != dim {
			return nil, fmt.Errorf("knn: sample %d has %d features, want %d", i, len(s), dim)
		}
		copied[i] = append([]float64(nil), s...)
	}
	return &KNN{
		k:       k,
		dim:     dim,
		samples: copied,
		labels:  append([]int(nil), labels...),
	}, nil
}

// LoadKNN reads a fitted model from a JSON file.
func LoadKNN(path string) (*KNN, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("knn: %w", err)
	}
	var f knnFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("knn: failed to decode %s: %w", path, err)
	}
	return NewKNN(f.NNeighbors, f.Samples, f.Labels)
}

func (m *KNN) Variant() Variant { return NearestNeighbor }

func (m *KNN) Dim() int { return m.dim }

type neighbor struct {
	dist  float64
	label int
}

// Classify takes a majority vote among the k nearest samples.
// Ties go to the smallest label. Confidence derives from the nearest distance.
func (m *KNN) Classify(x []float64) (int, float64, error) {
	if len(x) != m.dim {
		return 0, 0, fmt.Errorf("knn: input has %d features, want %d", len(x), m.dim)
	}

	ns := make([]neighbor, len(m.samples))
	for i, s := range m.samples {
		ns[i] = neighbor{dist: floats.Distance(x, s, 2), label: m.labels[i]}
	}
	slices.SortStableFunc(ns, func(a, b neighbor) int { return cmp.Compare(a.dist, b.dist) })

	k := min(m.k, len(ns))
	votes := make(map[int]int, k)
	for _, n := range ns[:k] {
		votes[n.label]++
	}
	best, bestVotes := 0, 0
	for label, count := range votes {
		if count > bestVotes || (count == bestVotes && label < best) {
			best, bestVotes = label, count
		}
	}

	return best, DistanceConfidence(ns[0].dist), nil
}

// DistanceConfidence maps a neighbour distance to clamp(1 - d/10, 0, 1).
func DistanceConfidence(d float64) float64 {
	if math.IsNaN(d) {
		return 0
	}
	return clamp(1-d/10, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
