package fertilizer

import "strings"

const (
	CategoryComplex       = "Complex Fertilizer"
	CategoryNitrogen      = "Nitrogen Fertilizer"
	CategoryPhosphatic    = "Phosphatic Fertilizer"
	CategoryPotassic      = "Potassic Fertilizer"
	CategoryMicronutrient = "Micronutrient Fertilizer"
	CategoryOrganic       = "Organic Fertilizer"
	CategorySpecialty     = "Specialty Fertilizer"
)

// Checked in order; the first rule with a matching keyword wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{CategoryComplex, []string{"NPK", "DAP", "MAP"}},
	{CategoryNitrogen, []string{"Urea", "Ammonium"}},
	{CategoryPhosphatic, []string{"Super", "Phosphate"}},
	{CategoryPotassic, []string{"Potash", "Potassium"}},
	{CategoryMicronutrient, []string{"Zinc", "Iron", "Boron", "Manganese"}},
	{CategoryOrganic, []string{"Compost", "Organic", "Manure", "Biofertilizer"}},
}

// Categorize classifies a fertilizer by case-sensitive substrings of its name.
func Categorize(name string) string {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}
	return CategorySpecialty
}
