package service

import (
	"context"
	"time"

	"agridash/internal/models"

	"github.com/google/uuid"
)

// UserStore is implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	GetByResetToken(ctx context.Context, token string) (*models.User, error)
	Exists(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
}

// CropStore is implemented by repository.CropRepository.
type CropStore interface {
	Create(ctx context.Context, crop *models.Crop) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Crop, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// SoilTestStore is implemented by repository.SoilTestRepository.
type SoilTestStore interface {
	Create(ctx context.Context, t *models.SoilTest) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.SoilTest, error)
}
