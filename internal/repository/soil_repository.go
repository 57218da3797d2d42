package repository

import (
	"context"

	"agridash/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var soilTestColumns = []string{
	"id", "user_id", "test_date", "nitrogen_level", "phosphorus_level", "potassium_level",
	"ph_level", "notes", "created_at",
}

type SoilTestRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSoilTestRepository(db *pgxpool.Pool, logger *zap.Logger) *SoilTestRepository {
	return &SoilTestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SoilTestRepository) Create(ctx context.Context, t *models.SoilTest) error {
	query := squirrel.Insert("soil_tests").
		Columns(soilTestColumns...).
		Values(t.ID, t.UserID, t.TestDate, t.NitrogenLevel, t.PhosphorusLevel, t.PotassiumLevel,
			t.PHLevel, t.Notes, t.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return mapError(err)
}

// ListByUser returns soil tests latest first. limit <= 0 means no limit.
func (r *SoilTestRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.SoilTest, error) {
	query := squirrel.Select(soilTestColumns...).
		From("soil_tests").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("test_date DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []*models.SoilTest
	for rows.Next() {
		var t models.SoilTest
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.TestDate, &t.NitrogenLevel, &t.PhosphorusLevel, &t.PotassiumLevel,
			&t.PHLevel, &t.Notes, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tests = append(tests, &t)
	}

	return tests, rows.Err()
}

func (r *SoilTestRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "soil_tests")
}
