package service

import (
	"context"
	"errors"
	"testing"

	"agridash/internal/dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestCropLifecycle(t *testing.T) {
	svc := NewCropService(&fakeCrops{}, zap.NewNop())
	owner, stranger := uuid.New(), uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateCropRequest{
		Acre: 2.5, CropType: " Wheat ", Stage: "Sowing", PlantingDate: "2024-11-10",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CropType != "Wheat" || created.PlantingDate != "2024-11-10" {
		t.Fatalf("created = %+v", created)
	}
	if _, err := svc.Create(context.Background(), owner, &dto.CreateCropRequest{Acre: 1.5, CropType: "Rice"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	crops, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(crops) != 2 || TotalAcreage(crops) != 4 {
		t.Fatalf("crops = %+v", crops)
	}

	id := uuid.MustParse(created.ID)
	if err := svc.Delete(context.Background(), stranger, id); !errors.Is(err, ErrCropNotFound) {
		t.Fatalf("stranger delete err = %v", err)
	}
	if err := svc.Delete(context.Background(), owner, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), owner, id); !errors.Is(err, ErrCropNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestCropCreateValidation(t *testing.T) {
	svc := NewCropService(&fakeCrops{}, zap.NewNop())

	tests := []struct {
		req   dto.CreateCropRequest
		field string
	}{
		{dto.CreateCropRequest{Acre: 0, CropType: "Wheat"}, "acre"},
		{dto.CreateCropRequest{Acre: -1, CropType: "Wheat"}, "acre"},
		{dto.CreateCropRequest{Acre: 1, CropType: ""}, "crop_type"},
		{dto.CreateCropRequest{Acre: 1, CropType: "Wheat", PlantingDate: "tomorrow"}, "planting_date"},
	}
	for _, tt := range tests {
		_, err := svc.Create(context.Background(), uuid.New(), &tt.req)
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != tt.field {
			t.Fatalf("%+v: err = %v", tt.req, err)
		}
	}
}
