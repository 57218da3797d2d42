package repository

import (
	"context"

	"agridash/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CropRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCropRepository(db *pgxpool.Pool, logger *zap.Logger) *CropRepository {
	return &CropRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CropRepository) Create(ctx context.Context, crop *models.Crop) error {
	query := squirrel.Insert("crops").
		Columns("id", "user_id", "acre", "crop_type", "stage", "planting_date", "created_at").
		Values(crop.ID, crop.UserID, crop.Acre, crop.CropType, crop.Stage, crop.PlantingDate, crop.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return mapError(err)
}

// ListByUser returns crops newest planting date first; undated crops come last.
func (r *CropRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Crop, error) {
	query := squirrel.Select("id", "user_id", "acre", "crop_type", "stage", "planting_date", "created_at").
		From("crops").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("planting_date DESC NULLS LAST", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crops []*models.Crop
	for rows.Next() {
		var c models.Crop
		if err := rows.Scan(&c.ID, &c.UserID, &c.Acre, &c.CropType, &c.Stage, &c.PlantingDate, &c.CreatedAt); err != nil {
			return nil, err
		}
		crops = append(crops, &c)
	}

	return crops, rows.Err()
}

// Delete removes a crop only if it belongs to userID.
func (r *CropRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("crops").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CropRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "crops")
}
