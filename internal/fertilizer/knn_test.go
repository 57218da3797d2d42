package fertilizer

import (
	"math"
	"testing"
)

func TestKNNMajorityVote(t *testing.T) {
	m, err := NewKNN(3, [][]float64{
		{0, 0}, {0.1, 0}, {5, 5}, {0, 0.2},
	}, []int{7, 4, 9, 7})
	if err != nil {
		t.Fatalf("NewKNN: %v", err)
	}

	label, conf, err := m.Classify([]float64{0, 0})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if label != 7 {
		t.Fatalf("label = %d, want 7", label)
	}
	if conf != 1 {
		t.Fatalf("confidence = %v, want 1", conf)
	}
}

func TestKNNTieGoesToSmallestLabel(t *testing.T) {
	m, err := NewKNN(2, [][]float64{{1}, {-1}}, []int{5, 3})
	if err != nil {
		t.Fatalf("NewKNN: %v", err)
	}
	label, _, err := m.Classify([]float64{0})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if label != 3 {
		t.Fatalf("label = %d, want 3", label)
	}
}

func TestKNNDimensionMismatch(t *testing.T) {
	m, err := NewKNN(1, [][]float64{{1, 2}}, []int{0})
	if err != nil {
		t.Fatalf("NewKNN: %v", err)
	}
	if _, _, err := m.Classify([]float64{1}); err == nil {
		t.Fatal("expected dimension error")
	}
}

func TestNewKNNValidates(t *testing.T) {
	if _, err := NewKNN(0, [][]float64{{1}}, []int{0}); err == nil {
		t.Fatal("expected error for k=0")
	}
	if _, err := NewKNN(1, nil, nil); err == nil {
		t.Fatal("expected error for no samples")
	}
	if _, err := NewKNN(1, [][]float64{{1}, {1, 2}}, []int{0, 1}); err == nil {
		t.Fatal("expected error for ragged samples")
	}
	if _, err := NewKNN(1, [][]float64{{1}}, []int{0, 1}); err == nil {
		t.Fatal("expected error for label count mismatch")
	}
}

func TestDistanceConfidence(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{0, 1},
		{2.5, 0.75},
		{10, 0},
		{25, 0},
		{math.Inf(1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := DistanceConfidence(tt.d); got != tt.want {
			t.Errorf("DistanceConfidence(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}
