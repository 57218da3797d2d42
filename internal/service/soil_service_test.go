package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"agridash/internal/dto"
	"agridash/internal/metrics"
	"agridash/internal/models"
	"agridash/internal/soil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubAdvisor struct {
	advice string
	err    error
	calls  int
}

func (a *stubAdvisor) Advise(ctx context.Context, crop string, test *models.SoilTest, rec *soil.Recommendation) (string, error) {
	a.calls++
	return a.advice, a.err
}

func newSoilService(advisor Advisor) (*SoilService, *fakeSoil, *fakeCrops) {
	soilRepo := &fakeSoil{}
	crops := &fakeCrops{}
	return NewSoilService(soilRepo, crops, advisor, time.Second, metrics.New(nil), zap.NewNop()), soilRepo, crops
}

func TestSoilCreateValidates(t *testing.T) {
	svc, _, _ := newSoilService(nil)
	user := uuid.New()

	tests := []struct {
		name  string
		req   dto.CreateSoilTestRequest
		field string
	}{
		{"date", dto.CreateSoilTestRequest{TestDate: "01/03/2024", NitrogenLevel: "Low", PhosphorusLevel: "Low", PotassiumLevel: "Low", PHLevel: 6.5}, "test_date"},
		{"level", dto.CreateSoilTestRequest{TestDate: "2024-03-01", NitrogenLevel: "Plenty", PhosphorusLevel: "Low", PotassiumLevel: "Low", PHLevel: 6.5}, "nitrogen_level"},
		{"ph", dto.CreateSoilTestRequest{TestDate: "2024-03-01", NitrogenLevel: "Low", PhosphorusLevel: "Low", PotassiumLevel: "Low", PHLevel: 15}, "ph_level"},
	}
	for _, tt := range tests {
		_, err := svc.Create(context.Background(), user, &tt.req)
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != tt.field {
			t.Fatalf("%s: err = %v", tt.name, err)
		}
	}
}

func addTest(t *testing.T, svc *SoilService, user uuid.UUID, date, n, p, k string, ph float64) {
	t.Helper()
	_, err := svc.Create(context.Background(), user, &dto.CreateSoilTestRequest{
		TestDate: date, NitrogenLevel: n, PhosphorusLevel: p, PotassiumLevel: k, PHLevel: ph,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestLatestBreaksDateTiesByCreation(t *testing.T) {
	svc, soilRepo, _ := newSoilService(nil)
	user := uuid.New()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	_ = soilRepo.Create(context.Background(), &models.SoilTest{
		ID: uuid.New(), UserID: user, TestDate: day, PHLevel: 6.0, CreatedAt: created,
	})
	_ = soilRepo.Create(context.Background(), &models.SoilTest{
		ID: uuid.New(), UserID: user, TestDate: day, PHLevel: 7.0, CreatedAt: created.Add(time.Minute),
	})
	_ = soilRepo.Create(context.Background(), &models.SoilTest{
		ID: uuid.New(), UserID: user, TestDate: day.AddDate(0, 0, -1), PHLevel: 8.0, CreatedAt: created.Add(time.Hour),
	})

	latest, err := svc.Latest(context.Background(), user)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.PHLevel != 7.0 {
		t.Fatalf("latest pH = %v, want the newer record on the same date (7.0)", latest.PHLevel)
	}
}

func TestRecommendUsesLatestTest(t *testing.T) {
	svc, _, _ := newSoilService(nil)
	user := uuid.New()

	addTest(t, svc, user, "2024-03-01", "low", "Medium", "Medium", 6.5)
	addTest(t, svc, user, "2023-01-01", "High", "High", "High", 6.5)

	rec, err := svc.Recommend(context.Background(), user, "wheat", false)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.Status != "Needs Adjustment" || !strings.Contains(rec.Recommendation, "Increase Nitrogen") {
		t.Fatalf("rec = %+v", rec)
	}
	if rec.TestDate != "2024-03-01" || rec.Crop != "Wheat" {
		t.Fatalf("rec = %+v", rec)
	}
}

func TestRecommendDefaultsToFirstCrop(t *testing.T) {
	svc, _, crops := newSoilService(nil)
	user := uuid.New()
	addTest(t, svc, user, "2024-03-01", "High", "High", "High", 7)

	older := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_ = crops.Create(context.Background(), &models.Crop{ID: uuid.New(), UserID: user, Acre: 1, CropType: "rice", PlantingDate: &older})
	_ = crops.Create(context.Background(), &models.Crop{ID: uuid.New(), UserID: user, Acre: 1, CropType: "cotton", PlantingDate: &newer})

	rec, err := svc.Recommend(context.Background(), user, "", false)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.Crop != "Cotton" || rec.Status != "Good" {
		t.Fatalf("rec = %+v", rec)
	}
}

func TestRecommendWithoutData(t *testing.T) {
	svc, _, _ := newSoilService(nil)
	user := uuid.New()

	if _, err := svc.Recommend(context.Background(), user, "", false); !errors.Is(err, ErrValidation) {
		t.Fatalf("no crop err = %v", err)
	}
	if _, err := svc.Recommend(context.Background(), user, "wheat", false); !errors.Is(err, ErrNoSoilTest) {
		t.Fatalf("no soil test err = %v", err)
	}
}

func TestRecommendAdvice(t *testing.T) {
	advisor := &stubAdvisor{advice: "  Apply urea in two splits.  "}
	svc, _, _ := newSoilService(advisor)
	user := uuid.New()
	addTest(t, svc, user, "2024-03-01", "Low", "High", "High", 6.5)

	rec, err := svc.Recommend(context.Background(), user, "wheat", false)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.Advice != "" || advisor.calls != 0 {
		t.Fatalf("advice requested without asking: %+v", rec)
	}

	rec, err = svc.Recommend(context.Background(), user, "wheat", true)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.Advice != "Apply urea in two splits." {
		t.Fatalf("advice = %q", rec.Advice)
	}

	advisor.err = errors.New("gigachat down")
	rec, err = svc.Recommend(context.Background(), user, "wheat", true)
	if err != nil {
		t.Fatalf("advisor failure must not fail the request: %v", err)
	}
	if rec.Advice != "" || rec.Status != "Needs Adjustment" {
		t.Fatalf("rec = %+v", rec)
	}
}

func TestGrades(t *testing.T) {
	g := Grades(&models.SoilTest{NitrogenLevel: soil.VeryHigh, PhosphorusLevel: soil.Medium, PotassiumLevel: soil.VeryLow})
	if g.Nitrogen != "excellent" || g.Phosphorus != "good" || g.Potassium != "poor" {
		t.Fatalf("grades = %+v", g)
	}
}
