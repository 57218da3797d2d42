package fertilizer

import (
	"math"
	"testing"
)

func TestNetworkSoftmaxOutput(t *testing.T) {
	n, err := NewNetwork([]LayerSpec{
		{
			Weights:    [][]float64{{1, 0, 0}, {0, 1, 0}},
			Bias:       []float64{0, 0, 0},
			Activation: ReLU,
		},
		{
			Weights: [][]float64{{2, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			Bias:    []float64{0, 0, 0},
		},
	})
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	probs, err := n.Probabilities([]float64{3, -1})
	if err != nil {
		t.Fatalf("Probabilities: %v", err)
	}
	sum := 0.0
	for _, p := range probs {
		if p < 0 || p > 1 {
			t.Fatalf("probability out of range: %v", probs)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("probabilities sum to %v", sum)
	}

	idx, conf, err := n.Classify([]float64{3, -1})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if idx != 0 {
		t.Fatalf("class = %d, want 0", idx)
	}
	want := math.Exp(6) / (math.Exp(6) + 2)
	if math.Abs(conf-want) > 1e-9 {
		t.Fatalf("confidence = %v, want %v", conf, want)
	}
}

func TestNetworkExplicitSoftmaxNotReapplied(t *testing.T) {
	n, err := NewNetwork([]LayerSpec{{
		Weights:    [][]float64{{1, 0}},
		Bias:       []float64{0, 0},
		Activation: Softmax,
	}})
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	probs, err := n.Probabilities([]float64{1})
	if err != nil {
		t.Fatalf("Probabilities: %v", err)
	}
	want := math.E / (math.E + 1)
	if math.Abs(probs[0]-want) > 1e-9 {
		t.Fatalf("p0 = %v, want %v", probs[0], want)
	}
}

func TestNewNetworkValidates(t *testing.T) {
	tests := []struct {
		name  string
		specs []LayerSpec
	}{
		{"no layers", nil},
		{"bias width", []LayerSpec{{Weights: [][]float64{{1, 2}}, Bias: []float64{0}}}},
		{"ragged", []LayerSpec{{Weights: [][]float64{{1, 2}, {1}}, Bias: []float64{0, 0}}}},
		{"chain", []LayerSpec{
			{Weights: [][]float64{{1, 2}}, Bias: []float64{0, 0}},
			{Weights: [][]float64{{1}}, Bias: []float64{0}},
		}},
		{"activation", []LayerSpec{{Weights: [][]float64{{1}}, Bias: []float64{0}, Activation: "swish"}}},
	}
	for _, tt := range tests {
		if _, err := NewNetwork(tt.specs); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
