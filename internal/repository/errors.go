package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("unique constraint violated")
)

const uniqueViolation = "23505"

// ConflictError names the unique constraint a write collided with.
type ConflictError struct {
	Constraint string
}

func (e *ConflictError) Error() string {
	return "unique constraint violated: " + e.Constraint
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &ConflictError{Constraint: pgErr.ConstraintName}
	}
	return err
}
