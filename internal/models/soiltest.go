package models

import (
	"time"

	"agridash/internal/soil"

	"github.com/google/uuid"
)

// SoilTest is immutable once stored.
type SoilTest struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"user_id"`
	TestDate        time.Time  `db:"test_date"`
	NitrogenLevel   soil.Level `db:"nitrogen_level"`
	PhosphorusLevel soil.Level `db:"phosphorus_level"`
	PotassiumLevel  soil.Level `db:"potassium_level"`
	PHLevel         float64    `db:"ph_level"`
	Notes           string     `db:"notes"`
	CreatedAt       time.Time  `db:"created_at"`
}

func (t *SoilTest) Reading() soil.Reading {
	return soil.Reading{
		Date:       t.TestDate,
		Nitrogen:   t.NitrogenLevel,
		Phosphorus: t.PhosphorusLevel,
		Potassium:  t.PotassiumLevel,
		PH:         t.PHLevel,
	}
}
