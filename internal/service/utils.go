package service

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"agridash/internal/dto"
	"agridash/internal/models"
	"agridash/internal/soil"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

const minPasswordLength = 6

// sanitizeUTF8 removes invalid UTF-8 sequences from string
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(soil.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, invalid(field, "Invalid %s: expected YYYY-MM-DD", field)
	}
	return t, nil
}

func validatePassword(password, confirm string) error {
	if len(password) < minPasswordLength {
		return invalid("password", "Password must be at least %d characters.", minPasswordLength)
	}
	if password != confirm {
		return invalid("confirm_password", "Passwords do not match.")
	}
	return nil
}

func toProfileResponse(u *models.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		Phone:       u.Phone,
		FullName:    u.FullName,
		FarmName:    u.FarmName,
		Location:    u.Location,
		TotalLand:   u.TotalLand,
		MemberSince: u.MemberSince().Format(soil.DateLayout),
	}
}

func toCropResponse(c *models.Crop) dto.CropResponse {
	resp := dto.CropResponse{
		ID:        c.ID.String(),
		Acre:      c.Acre,
		CropType:  c.CropType,
		Stage:     c.Stage,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.PlantingDate != nil {
		resp.PlantingDate = c.PlantingDate.Format(soil.DateLayout)
	}
	return resp
}

func toSoilTestResponse(t *models.SoilTest) dto.SoilTestResponse {
	return dto.SoilTestResponse{
		ID:              t.ID.String(),
		TestDate:        t.TestDate.Format(soil.DateLayout),
		NitrogenLevel:   string(t.NitrogenLevel),
		PhosphorusLevel: string(t.PhosphorusLevel),
		PotassiumLevel:  string(t.PotassiumLevel),
		PHLevel:         t.PHLevel,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}
