package fertilizer

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
)

// Scaler standardizes a feature vector as (x - mean) / scale.
type Scaler struct {
	mean  []float64
	scale []float64
}

type scalerFile struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// NewScaler copies its inputs. A zero scale entry is treated as 1.
func NewScaler(mean, scale []float64) (*Scaler, error) {
	if len(mean) != FeatureCount || len(scale) != FeatureCount {
		return nil, fmt.Errorf("scaler: expected %d features, got mean=%d scale=%d", FeatureCount, len(mean), len(scale))
	}
	s := &Scaler{
		mean:  append([]float64(nil), mean...),
		scale: append([]float64(nil), scale...),
	}
	for i, v := range s.scale {
		if v == 0 {
			s.scale[i] = 1
		}
	}
	return s, nil
}

// LoadScaler reads scaler parameters from a JSON file.
func LoadScaler(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scaler: %w", err)
	}
	var f scalerFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scaler: failed to decode %s: %w", path, err)
	}
	return NewScaler(f.Mean, f.Scale)
}

func (s *Scaler) Transform(v FeatureVector) []float64 {
	out := make([]float64, FeatureCount)
	floats.SubTo(out, v[:], s.mean)
	floats.Div(out, s.scale)
	return out
}
