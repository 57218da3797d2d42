package repository

import (
	"context"
	"time"

	"agridash/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var userColumns = []string{
	"id", "username", "email", "phone", "password", "full_name", "farm_name",
	"location", "total_land", "reset_token", "token_expiry", "created_at", "updated_at",
}

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.Phone, user.Password, user.FullName, user.FarmName,
			user.Location, user.TotalLand, user.ResetToken, user.TokenExpiry, user.CreatedAt, user.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return mapError(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByIdentifier matches either the username or the email.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Or{
		squirrel.Eq{"username": identifier},
		squirrel.Eq{"email": identifier},
	})
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"reset_token": token})
}

// Exists reports whether another user already holds value in column.
func (r *UserRepository) Exists(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error) {
	query := squirrel.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(squirrel.Eq{column: value}).
		Where(squirrel.NotEq{"id": exclude}).
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateProfile writes the editable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := squirrel.Update("users").
		Set("email", user.Email).
		Set("phone", user.Phone).
		Set("full_name", user.FullName).
		Set("farm_name", user.FarmName).
		Set("location", user.Location).
		Set("total_land", user.TotalLand).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.execOne(ctx, query)
}

func (r *UserRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error {
	query := squirrel.Update("users").
		Set("reset_token", token).
		Set("token_expiry", expiry).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return r.execOne(ctx, query)
}

// UpdatePassword stores a new hash and clears any pending reset token.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	query := squirrel.Update("users").
		Set("password", hash).
		Set("reset_token", nil).
		Set("token_expiry", nil).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return r.execOne(ctx, query)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "users")
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Phone, &user.Password, &user.FullName, &user.FarmName,
		&user.Location, &user.TotalLand, &user.ResetToken, &user.TokenExpiry, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

func (r *UserRepository) execOne(ctx context.Context, query squirrel.UpdateBuilder) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func count(ctx context.Context, db *pgxpool.Pool, table string) (int64, error) {
	sql, args, err := squirrel.Select("COUNT(*)").From(table).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
