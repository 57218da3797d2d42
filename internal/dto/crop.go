package dto

type CreateCropRequest struct {
	Acre     float64 `json:"acre"`
	CropType string  `json:"crop_type"`
	Stage    string  `json:"stage"`
	// PlantingDate is YYYY-MM-DD and optional.
	PlantingDate string `json:"planting_date"`
}

type CropResponse struct {
	ID           string  `json:"id"`
	Acre         float64 `json:"acre"`
	CropType     string  `json:"crop_type"`
	Stage        string  `json:"stage"`
	PlantingDate string  `json:"planting_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
