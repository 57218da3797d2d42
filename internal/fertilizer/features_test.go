package fertilizer

import (
	"errors"
	"math"
	"testing"
)

func validInput() RawInput {
	return RawInput{
		Crop:        "Wheat",
		Region:      "Punjab",
		Month:       "March",
		Temperature: 25,
		Humidity:    60,
		PH:          6.5,
		Moisture:    40,
		Nitrogen:    50,
		Phosphorus:  30,
		Potassium:   20,
	}
}

func TestBuildFeatureVectorOrder(t *testing.T) {
	c := mustCatalog(t)

	v, err := BuildFeatureVector(c, validInput())
	if err != nil {
		t.Fatalf("BuildFeatureVector: %v", err)
	}
	want := FeatureVector{1, 20, 2, 25, 60, 6.5, 40, 50, 30, 20}
	if v != want {
		t.Fatalf("vector = %v, want %v", v, want)
	}
}

func TestBuildFeatureVectorBoundsInclusive(t *testing.T) {
	c := mustCatalog(t)

	in := validInput()
	in.Nitrogen, in.Phosphorus, in.Potassium = 300, 200, 250
	in.Temperature, in.Humidity, in.PH, in.Moisture = 10, 100, 4, 0
	if _, err := BuildFeatureVector(c, in); err != nil {
		t.Fatalf("boundary input rejected: %v", err)
	}
}

func TestBuildFeatureVectorRanges(t *testing.T) {
	c := mustCatalog(t)

	tests := []struct {
		field  string
		mutate func(*RawInput)
	}{
		{"N", func(in *RawInput) { in.Nitrogen = 300.01 }},
		{"P", func(in *RawInput) { in.Phosphorus = -1 }},
		{"K", func(in *RawInput) { in.Potassium = 251 }},
		{"temperature", func(in *RawInput) { in.Temperature = 9.5 }},
		{"humidity", func(in *RawInput) { in.Humidity = 101 }},
		{"pH", func(in *RawInput) { in.PH = 9.1 }},
		{"moisture", func(in *RawInput) { in.Moisture = math.NaN() }},
		{"temperature", func(in *RawInput) { in.Temperature = math.Inf(1) }},
		{"pH", func(in *RawInput) { in.PH = 3.9 }},
	}
	for _, tt := range tests {
		in := validInput()
		tt.mutate(&in)
		_, err := BuildFeatureVector(c, in)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("%s: err = %v, want ErrOutOfRange", tt.field, err)
		}
		var re *RangeError
		if !errors.As(err, &re) || re.Field != tt.field {
			t.Fatalf("%s: err = %#v", tt.field, err)
		}
	}
}

func TestRangeErrorMessage(t *testing.T) {
	c := mustCatalog(t)

	in := validInput()
	in.Humidity = 101
	_, err := BuildFeatureVector(c, in)
	want := "Invalid humidity value: 101. Must be between 0 and 100."
	if err == nil || err.Error() != want {
		t.Fatalf("err = %v, want %q", err, want)
	}
}

func TestBuildFeatureVectorNumericBeforeCategorical(t *testing.T) {
	c := mustCatalog(t)

	in := validInput()
	in.Crop = "Atlantis"
	in.Humidity = 150
	if _, err := BuildFeatureVector(c, in); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestBuildFeatureVectorUnknownCategory(t *testing.T) {
	c := mustCatalog(t)

	tests := []struct {
		kind   string
		mutate func(*RawInput)
	}{
		{"crop", func(in *RawInput) { in.Crop = "wheat" }},
		{"region", func(in *RawInput) { in.Region = "Atlantis" }},
		{"month", func(in *RawInput) { in.Month = "Smarch" }},
	}
	for _, tt := range tests {
		in := validInput()
		tt.mutate(&in)
		_, err := BuildFeatureVector(c, in)
		var ce *CategoryError
		if !errors.As(err, &ce) || ce.Kind != tt.kind {
			t.Fatalf("%s: err = %v", tt.kind, err)
		}
	}
}

func TestFeatureNamesMatchVectorPositions(t *testing.T) {
	v, err := BuildFeatureVector(mustCatalog(t), validInput())
	if err != nil {
		t.Fatalf("BuildFeatureVector: %v", err)
	}

	want := map[string]float64{
		"temperature": 25, "humidity": 60, "ph": 6.5, "moisture": 40,
		"N": 50, "P": 30, "K": 20,
	}
	for i, name := range FeatureNames {
		if w, ok := want[name]; ok && v[i] != w {
			t.Errorf("%s at %d = %v, want %v", name, i, v[i], w)
		}
	}
}
