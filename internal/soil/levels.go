package soil

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a qualitative nutrient reading from a soil test.
type Level string

const (
	VeryLow  Level = "Very Low"
	Low      Level = "Low"
	Medium   Level = "Medium"
	High     Level = "High"
	VeryHigh Level = "Very High"
)

// Levels lists every accepted level from lowest to highest.
var Levels = []Level{VeryLow, Low, Medium, High, VeryHigh}

var ErrInvalidLevel = errors.New("invalid nutrient level")

// ParseLevel accepts a level name regardless of case and surrounding space.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for _, l := range Levels {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Deficient reports whether the nutrient needs supplementing.
func (l Level) Deficient() bool {
	return l == Low || l == VeryLow
}

// Grade buckets a level into a display class: excellent, good, fair or poor.
func Grade(l Level) string {
	switch l {
	case High, VeryHigh:
		return "excellent"
	case Medium:
		return "good"
	case Low:
		return "fair"
	default:
		return "poor"
	}
}
