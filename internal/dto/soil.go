package dto

type CreateSoilTestRequest struct {
	TestDate        string  `json:"test_date"`
	NitrogenLevel   string  `json:"nitrogen_level"`
	PhosphorusLevel string  `json:"phosphorus_level"`
	PotassiumLevel  string  `json:"potassium_level"`
	PHLevel         float64 `json:"ph_level"`
	Notes           string  `json:"notes"`
}

type SoilTestResponse struct {
	ID              string  `json:"id"`
	TestDate        string  `json:"test_date"`
	NitrogenLevel   string  `json:"nitrogen_level"`
	PhosphorusLevel string  `json:"phosphorus_level"`
	PotassiumLevel  string  `json:"potassium_level"`
	PHLevel         float64 `json:"ph_level"`
	Notes           string  `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// SoilGrades are display classes per nutrient: excellent, good, fair or poor.
type SoilGrades struct {
	Nitrogen   string `json:"nitrogen"`
	Phosphorus string `json:"phosphorus"`
	Potassium  string `json:"potassium"`
}
