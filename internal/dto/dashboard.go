package dto

type DashboardResponse struct {
	Profile        ProfileResponse         `json:"profile"`
	Crops          []CropResponse          `json:"crops"`
	TotalAcreage   float64                 `json:"total_acreage"`
	LastTestDate   string                  `json:"last_test_date"`
	LatestSoilTest *SoilTestResponse       `json:"latest_soil_test,omitempty"`
	SoilGrades     *SoilGrades             `json:"soil_grades,omitempty"`
	Recommendation *RecommendationResponse `json:"recommendation,omitempty"`
	Weather        WeatherResponse         `json:"weather"`
}
