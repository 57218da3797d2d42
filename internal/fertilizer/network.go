package fertilizer

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Activation string

const (
	Linear  Activation = "linear"
	ReLU    Activation = "relu"
	Tanh    Activation = "tanh"
	Sigmoid Activation = "sigmoid"
	Softmax Activation = "softmax"
)

// LayerSpec is one dense layer as stored on disk. Weights are inputs x outputs.
type LayerSpec struct {
	Weights    [][]float64 `json:"weights"`
	Bias       []float64   `json:"bias"`
	Activation Activation  `json:"activation"`
}

type networkFile struct {
	Layers []LayerSpec `json:"layers"`
}

type denseLayer struct {
	weights    *mat.Dense
	bias       *mat.VecDense
	activation Activation
}

// Network is a feed-forward classifier producing a probability per class.
type Network struct {
	layers []denseLayer
	dim    int
}

func NewNetwork(specs []LayerSpec) (*Network, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("network: no layers")
	}

	n := &Network{layers: make([]denseLayer, 0, len(specs))}
	prevOut := 0
	for i, spec := range specs {
		rows := len(spec.Weights)
		if rows == 0 || len(spec.Weights[0]) == 0 {
			return nil, fmt.Errorf("network: layer %d has empty weights", i)
		}
		cols := len(spec.Weights[0])
		if i > 0 && rows != prevOut {
			return nil, fmt.Errorf("network: layer %d expects %d inputs, previous layer yields %d", i, rows, prevOut)
		}
		if len(spec.Bias) != cols {
			return nil, fmt.Errorf("network: layer %d bias has %d entries, want %d", i, len(spec.Bias), cols)
		}

		data := make([]float64, 0, rows*cols)
		for r, row := range spec.Weights {
			if len(row) != cols {
				return nil, fmt.Errorf("network: layer %d row %d has %d columns, want %d", i, r, len(row), cols)
			}
			data = append(data, row...)
		}

		act := spec.Activation
		switch act {
		case "":
			act = Linear
		case Linear, ReLU, Tanh, Sigmoid, Softmax:
		default:
			return nil, fmt.Errorf("network: layer %d has unknown activation %q", i, act)
		}

		n.layers = append(n.layers, denseLayer{
			weights:    mat.NewDense(rows, cols, data),
			bias:       mat.NewVecDense(cols, append([]float64(nil), spec.Bias...)),
			activation: act,
		})
		if i == 0 {
			n.dim = rows
		}
		prevOut = cols
	}
	return n, nil
}

// LoadNetwork reads layer weights from a JSON file.
func LoadNetwork(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	var f networkFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("network: failed to decode %s: %w", path, err)
	}
	return NewNetwork(f.Layers)
}

func (n *Network) Variant() Variant { return Classifier }

func (n *Network) Dim() int { return n.dim }

// Probabilities runs a forward pass. The final layer is normalized with
// softmax unless it already applies one.
func (n *Network) Probabilities(x []float64) ([]float64, error) {
	if len(x) != n.dim {
		return nil, fmt.Errorf("network: input has %d features, want %d", len(x), n.dim)
	}

	in := mat.NewVecDense(len(x), append([]float64(nil), x...))
	for _, l := range n.layers {
		_, cols := l.weights.Dims()
		out := mat.NewVecDense(cols, nil)
		out.MulVec(l.weights.T(), in)
		out.AddVec(out, l.bias)
		activate(l.activation, out.RawVector().Data)
		in = out
	}

	probs := append([]float64(nil), in.RawVector().Data...)
	if n.layers[len(n.layers)-1].activation != Softmax {
		softmax(probs)
	}
	return probs, nil
}

// Classify returns the most probable class and its probability.
func (n *Network) Classify(x []float64) (int, float64, error) {
	probs, err := n.Probabilities(x)
	if err != nil {
		return 0, 0, err
	}
	idx := floats.MaxIdx(probs)
	return idx, probs[idx], nil
}

func activate(a Activation, v []float64) {
	switch a {
	case ReLU:
		for i, x := range v {
			v[i] = math.Max(0, x)
		}
	case Tanh:
		for i, x := range v {
			v[i] = math.Tanh(x)
		}
	case Sigmoid:
		for i, x := range v {
			v[i] = 1 / (1 + math.Exp(-x))
		}
	case Softmax:
		softmax(v)
	}
}

func softmax(v []float64) {
	maxV := floats.Max(v)
	for i, x := range v {
		v[i] = math.Exp(x - maxV)
	}
	floats.Scale(1/floats.Sum(v), v)
}
