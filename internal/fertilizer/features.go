package fertilizer

import "math"

// FeatureCount is the width of the model input.
const FeatureCount = 10

// FeatureNames lists the model input positions in order, named by request key.
var FeatureNames = [FeatureCount]string{
	"crop", "region", "month",
	"temperature", "humidity", "ph", "moisture",
	"N", "P", "K",
}

// FeatureVector is an encoded, range-checked model input.
type FeatureVector [FeatureCount]float64

// RawInput is an unvalidated prediction request.
type RawInput struct {
	Crop   string
	Region string
	Month  string

	Temperature float64
	Humidity    float64
	PH          float64
	Moisture    float64
	Nitrogen    float64
	Phosphorus  float64
	Potassium   float64
}

// Range is a closed interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return !math.IsNaN(v) && v >= r.Min && v <= r.Max
}

type numericField struct {
	name  string
	rng   Range
	value func(RawInput) float64
}

// Validation order of the numeric inputs.
var numericFields = []numericField{
	{"N", Range{0, 300}, func(in RawInput) float64 { return in.Nitrogen }},
	{"P", Range{0, 200}, func(in RawInput) float64 { return in.Phosphorus }},
	{"K", Range{0, 250}, func(in RawInput) float64 { return in.Potassium }},
	{"temperature", Range{10, 50}, func(in RawInput) float64 { return in.Temperature }},
	{"humidity", Range{0, 100}, func(in RawInput) float64 { return in.Humidity }},
	{"pH", Range{4, 9}, func(in RawInput) float64 { return in.PH }},
	{"moisture", Range{0, 100}, func(in RawInput) float64 { return in.Moisture }},
}

// Ranges returns the accepted bound for each numeric input, keyed by field name.
func Ranges() map[string]Range {
	out := make(map[string]Range, len(numericFields))
	for _, f := range numericFields {
		out[f.name] = f.rng
	}
	return out
}

// BuildFeatureVector validates raw and encodes it in model input order.
// Numeric bounds are checked before categorical lookups.
func BuildFeatureVector(c *Catalog, raw RawInput) (FeatureVector, error) {
	var v FeatureVector

	for _, f := range numericFields {
		x := f.value(raw)
		if !f.rng.Contains(x) {
			return v, &RangeError{Field: f.name, Value: x, Min: f.rng.Min, Max: f.rng.Max}
		}
	}

	crop, err := c.Crops.Encode(raw.Crop)
	if err != nil {
		return v, err
	}
	region, err := c.Regions.Encode(raw.Region)
	if err != nil {
		return v, err
	}
	month, err := c.Months.Encode(raw.Month)
	if err != nil {
		return v, err
	}

	v = FeatureVector{
		float64(crop), float64(region), float64(month),
		raw.Temperature, raw.Humidity, raw.PH, raw.Moisture,
		raw.Nitrogen, raw.Phosphorus, raw.Potassium,
	}
	return v, nil
}
