package dto

type RecommendationResponse struct {
	Crop           string `json:"crop"`
	Status         string `json:"status"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
	TestDate       string `json:"test_date"`
	Advice         string `json:"advice,omitempty"`
}
