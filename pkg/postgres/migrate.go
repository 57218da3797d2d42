package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaFS embed.FS

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	if _, err := pool.Exec(ctx, string(b)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info("Database schema applied")
	return nil
}
