package models

import (
	"time"

	"github.com/google/uuid"
)

type Crop struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	Acre         float64    `db:"acre"`
	CropType     string     `db:"crop_type"`
	Stage        string     `db:"stage"`
	PlantingDate *time.Time `db:"planting_date"`
	CreatedAt    time.Time  `db:"created_at"`
}
