// Package service contains the business logic for the MDS backend.
// Services validate inputs, enforce business rules, call exactly one repo
// method per operation, and translate every failure into a *domain.Error.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mds-studio/mds-backend/internal/domain"
	"github.com/mds-studio/mds-backend/internal/repo"
)

// Caller-facing messages for Service operations.
const (
	MsgEmptyServiceName = "Field 'name' can't be empty."
	MsgServiceExists    = "Object already exists."
	MsgInternalDatabase = "Internal database error"
)

func serviceNotFound(id int64) string {
	return fmt.Sprintf("Service with id: %d not found", id)
}

// CatalogService implements business logic for catalog Service records.
type CatalogService struct {
	repo repo.ServiceRepo
	log  *slog.Logger
}

// NewCatalogService constructs a CatalogService backed by the provided ServiceRepo.
func NewCatalogService(r repo.ServiceRepo, log *slog.Logger) *CatalogService {
	return &CatalogService{repo: r, log: log}
}

// Create validates the name and inserts a new service.
// Every insert failure is reported as a conflict; the wrapped cause still
// says whether it was domain.ErrDuplicate or domain.ErrUnavailable.
func (s *CatalogService) Create(ctx context.Context, name string) (domain.Service, error) {
	s.log.DebugContext(ctx, "catalog: creating service")
	if strings.TrimSpace(name) == "" {
		s.log.ErrorContext(ctx, "catalog: create rejected, empty name")
		return domain.Service{}, domain.BadRequest(MsgEmptyServiceName)
	}

	created, err := s.repo.Create(ctx, name)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog: create failed", "error", err)
		return domain.Service{}, domain.Conflict(MsgServiceExists, err)
	}
	return created, nil
}

// List returns every service. A store failure yields an empty list, not an
// error; the fault is only visible in the logs.
func (s *CatalogService) List(ctx context.Context) []domain.Service {
	s.log.DebugContext(ctx, "catalog: listing services")
	services, err := s.repo.List(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog: list failed, returning empty result", "error", err)
		return []domain.Service{}
	}
	if services == nil {
		return []domain.Service{}
	}
	return services
}

// GetByID returns a single service. Any failure is reported as not found.
func (s *CatalogService) GetByID(ctx context.Context, id int64) (domain.Service, error) {
	s.log.DebugContext(ctx, "catalog: getting service", "id", id)
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog: get failed", "id", id, "error", err)
		return domain.Service{}, domain.NotFound(serviceNotFound(id), err)
	}
	return svc, nil
}

// Update renames a service. The empty-name check runs before the store is
// touched; any store failure is reported as not found.
func (s *CatalogService) Update(ctx context.Context, id int64, name string) (domain.Service, error) {
	s.log.DebugContext(ctx, "catalog: updating service", "id", id)
	if strings.TrimSpace(name) == "" {
		s.log.ErrorContext(ctx, "catalog: update rejected, empty name", "id", id)
		return domain.Service{}, domain.BadRequest(MsgEmptyServiceName)
	}

	updated, err := s.repo.Update(ctx, id, name)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog: update failed", "id", id, "error", err)
		return domain.Service{}, domain.NotFound(serviceNotFound(id), err)
	}
	return updated, nil
}

// Delete removes a service and returns its id.
// Zero affected rows is not found; a store fault is internal.
func (s *CatalogService) Delete(ctx context.Context, id int64) (int64, error) {
	s.log.DebugContext(ctx, "catalog: deleting service", "id", id)
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog: delete failed", "id", id, "error", err)
		return 0, domain.Internal(MsgInternalDatabase, err)
	}
	if rows == 0 {
		s.log.ErrorContext(ctx, "catalog: delete matched no rows", "id", id)
		return 0, domain.NotFound(serviceNotFound(id), domain.ErrNotFound)
	}
	return id, nil
}
