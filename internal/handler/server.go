// Package handler implements the HTTP handlers for the MDS backend.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, services.go, employee.go) but share the same Server struct so
// they can access its dependencies. Handlers hold no business rules: they
// decode, call one service method, and encode the result or error envelope.
package handler

import (
	"context"
	"log/slog"

	"github.com/mds-studio/mds-backend/internal/domain"
)

// ServiceServicer defines the catalog operations the service handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type ServiceServicer interface {
	Create(ctx context.Context, name string) (domain.Service, error)
	List(ctx context.Context) []domain.Service
	GetByID(ctx context.Context, id int64) (domain.Service, error)
	Update(ctx context.Context, id int64, name string) (domain.Service, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// EmployeeServicer defines the employee operations the employee handler depends on.
type EmployeeServicer interface {
	Create(ctx context.Context, in domain.EmployeeInput) (domain.Employee, error)
}

// HealthChecker reports whether the backing store is reachable.
// *pgxpool.Pool satisfies it.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server implements every API endpoint. Wire it in main.go via Routes.
type Server struct {
	services  ServiceServicer
	employees EmployeeServicer
	health    HealthChecker
	log       *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil health checker makes /healthz report ok unconditionally.
func NewServer(services ServiceServicer, employees EmployeeServicer, health HealthChecker, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{services: services, employees: employees, health: health, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}
