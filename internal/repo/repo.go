// Package repo contains all database access logic for the MDS backend.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here: only SQL, type mapping, and classification of
// store failures into the domain sentinels.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mds-studio/mds-backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// SQLSTATE unique_violation.
const uniqueViolation = "23505"

// classify wraps err with the domain sentinel describing why the store call
// failed. It keeps the original error in the chain for logging.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", domain.ErrDuplicate, err)
	case errors.Is(err, domain.ErrCorrupt):
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}
