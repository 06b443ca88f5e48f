package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mds-studio/mds-backend/internal/domain"
)

// ServiceRepo defines the persistence operations for catalog Services.
// Every method issues exactly one statement.
type ServiceRepo interface {
	// Create inserts a service and returns the persisted row with the
	// DB-generated id and created_at. A taken name wraps domain.ErrDuplicate.
	Create(ctx context.Context, name string) (domain.Service, error)

	// List returns all services ordered by id.
	List(ctx context.Context) ([]domain.Service, error)

	// GetByID returns domain.ErrNotFound (wrapped) when no row matches.
	GetByID(ctx context.Context, id int64) (domain.Service, error)

	// Update renames a service, stamps updated_at, and returns the new row.
	// Returns domain.ErrNotFound (wrapped) when no row matches.
	Update(ctx context.Context, id int64, name string) (domain.Service, error)

	// Delete removes a service and reports how many rows were affected.
	// Zero rows is not an error at this layer.
	Delete(ctx context.Context, id int64) (int64, error)
}

type pgServiceRepo struct {
	db db
}

// NewServiceRepo constructs a ServiceRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewServiceRepo(db db) ServiceRepo {
	return &pgServiceRepo{db: db}
}

func (r *pgServiceRepo) Create(ctx context.Context, name string) (domain.Service, error) {
	const q = `
		INSERT INTO service (name)
		VALUES (@name)
		RETURNING id, name, created_at, updated_at`

	result, err := scanService(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name}))
	if err != nil {
		return domain.Service{}, fmt.Errorf("repo.ServiceRepo.Create: %w", classify(err))
	}
	return result, nil
}

func (r *pgServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	const q = `
		SELECT id, name, created_at, updated_at
		FROM service
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ServiceRepo.List: %w", classify(err))
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ServiceRepo.List: scan: %w", classify(err))
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ServiceRepo.List: rows: %w", classify(err))
	}
	return services, nil
}

func (r *pgServiceRepo) GetByID(ctx context.Context, id int64) (domain.Service, error) {
	const q = `
		SELECT id, name, created_at, updated_at
		FROM service
		WHERE id = @id`

	result, err := scanService(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Service{}, fmt.Errorf("repo.ServiceRepo.GetByID: %w", classify(err))
	}
	return result, nil
}

func (r *pgServiceRepo) Update(ctx context.Context, id int64, name string) (domain.Service, error) {
	const q = `
		UPDATE service
		SET name       = @name,
		    updated_at = now()
		WHERE id = @id
		RETURNING id, name, created_at, updated_at`

	result, err := scanService(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "name": name}))
	if err != nil {
		return domain.Service{}, fmt.Errorf("repo.ServiceRepo.Update: %w", classify(err))
	}
	return result, nil
}

func (r *pgServiceRepo) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM service WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return 0, fmt.Errorf("repo.ServiceRepo.Delete: %w", classify(err))
	}
	return tag.RowsAffected(), nil
}

// scanService maps one row into a domain.Service, handling the nullable updated_at.
func scanService(s scanner) (domain.Service, error) {
	var (
		svc       domain.Service
		createdAt time.Time
		updatedAt pgtype.Timestamptz
	)
	if err := s.Scan(&svc.ID, &svc.Name, &createdAt, &updatedAt); err != nil {
		return domain.Service{}, err
	}
	svc.CreatedAt = createdAt
	if updatedAt.Valid {
		ts := updatedAt.Time
		svc.UpdatedAt = &ts
	}
	return svc, nil
}
