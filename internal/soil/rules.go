package soil

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DateLayout = "2006-01-02"

const (
	acidicBelow   = 6.0
	alkalineAbove = 7.5
)

type Status string

const (
	StatusGood            Status = "Good"
	StatusNeedsAdjustment Status = "Needs Adjustment"
)

// Reading is the part of a soil test the rule engine looks at.
type Reading struct {
	Date       time.Time
	Nitrogen   Level
	Phosphorus Level
	Potassium  Level
	PH         float64
}

type Recommendation struct {
	Status         Status
	Message        string
	Recommendation string
}

// Recommend applies the nutrient and pH rules to the latest reading for crop.
// It returns nil when there is no reading.
func Recommend(latest *Reading, crop string) *Recommendation {
	if latest == nil {
		return nil
	}

	var b strings.Builder
	b.WriteString("Maintain current regimen. ")

	adjusted := false
	add := func(clause string) {
		b.WriteString(clause)
		adjusted = true
	}

	if latest.Nitrogen.Deficient() {
		add("Increase Nitrogen (N) application (e.g., Urea). ")
	}
	if latest.Phosphorus.Deficient() {
		add("Increase Phosphorus (P) application (e.g., DAP). ")
	}
	if latest.Potassium.Deficient() {
		add("Increase Potassium (K) application (e.g., Muriate of Potash). ")
	}
	if latest.PH < acidicBelow {
		add("Soil pH is low (acidic). Consider liming (Calcium Carbonate). ")
	} else if latest.PH > alkalineAbove {
		add("Soil pH is high (alkaline). Consider Sulphur application. ")
	}

	status := StatusNeedsAdjustment
	if !adjusted {
		b.WriteString("Soil levels are balanced.")
		status = StatusGood
	}

	return &Recommendation{
		Status: status,
		Message: fmt.Sprintf("Recommendation for %s based on soil test from %s.",
			cases.Title(language.Und).String(crop), latest.Date.Format(DateLayout)),
		Recommendation: strings.TrimSpace(b.String()),
	}
}
