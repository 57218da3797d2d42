package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// Float decodes from a JSON number or a numeric string such as "25".
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid number %s", s)
		}
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = Float(v)
	return nil
}

// PredictRequest uses pointers so absent fields can be told apart from zero.
// Numeric fields accept numbers or numeric strings.
type PredictRequest struct {
	Crop        *string `json:"crop"`
	Region      *string `json:"region"`
	Month       *string `json:"month"`
	Temperature *Float  `json:"temperature"`
	N           *Float  `json:"N"`
	P           *Float  `json:"P"`
	K           *Float  `json:"K"`
	Humidity    *Float  `json:"humidity"`
	PH          *Float  `json:"ph"`
	Moisture    *Float  `json:"moisture"`
}

type PredictResponse struct {
	Fertilizer     string  `json:"fertilizer"`
	FertilizerType string  `json:"fertilizer_type"`
	Confidence     float64 `json:"confidence"`
	Algorithm      string  `json:"algorithm"`
}

type CropGroupResponse struct {
	Name  string   `json:"name"`
	Crops []string `json:"crops"`
}

type RangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PredictOptionsResponse struct {
	CropGroups []CropGroupResponse      `json:"crop_groups"`
	Regions    []string                 `json:"regions"`
	Months     []string                 `json:"months"`
	Ranges     map[string]RangeResponse `json:"ranges"`
	// FeatureOrder is the model input order.
	FeatureOrder []string `json:"feature_order"`
	Available    bool     `json:"available"`
	Algorithm    string   `json:"algorithm"`
}
