package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mds-studio/mds-backend/internal/credential"
	"github.com/mds-studio/mds-backend/internal/domain"
	"github.com/mds-studio/mds-backend/internal/repo"
)

// Caller-facing messages for Employee operations.
const (
	MsgEmptyEmployeeFields = "Some fields are empty."
	MsgEmployeeExists      = "Employee already exists."
	MsgHashFailed          = "Failed to process password."
	MsgCorruptEmployee     = "Stored employee record is invalid."
)

// EmployeeService implements registration of staff accounts.
// The plaintext password never reaches the repo.
type EmployeeService struct {
	repo   repo.EmployeeRepo
	hasher credential.Hasher
	log    *slog.Logger
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(r repo.EmployeeRepo, h credential.Hasher, log *slog.Logger) *EmployeeService {
	return &EmployeeService{repo: r, hasher: h, log: log}
}

// Create registers an employee.
//   - name, last_name, email, password and role must be present and non-blank.
//   - role must be one of the canonical labels.
//   - the password is hashed before persistence.
//
// Any insert failure is reported as a conflict.
func (s *EmployeeService) Create(ctx context.Context, in domain.EmployeeInput) (domain.Employee, error) {
	s.log.DebugContext(ctx, "employee: creating employee")

	if anyBlank(in.Name, in.LastName, in.Email, in.Password, in.Role) {
		s.log.ErrorContext(ctx, "employee: create rejected, required fields missing")
		return domain.Employee{}, domain.BadRequest(MsgEmptyEmployeeFields)
	}

	// Role is decoded before the password is hashed.
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		s.log.ErrorContext(ctx, "employee: create rejected, bad role", "error", err)
		return domain.Employee{}, err
	}

	hash, err := s.hasher.Hash(*in.Password)
	if err != nil {
		s.log.ErrorContext(ctx, "employee: password hashing failed", "error", err)
		return domain.Employee{}, domain.Internal(MsgHashFailed, err)
	}

	created, err := s.repo.Create(ctx, domain.NewEmployee{
		Name:         *in.Name,
		LastName:     *in.LastName,
		MiddleName:   in.MiddleName,
		Email:        *in.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "employee: create failed", "error", err)
		if errors.Is(err, domain.ErrCorrupt) {
			return domain.Employee{}, domain.Internal(MsgCorruptEmployee, err)
		}
		return domain.Employee{}, domain.Conflict(MsgEmployeeExists, err)
	}

	s.log.DebugContext(ctx, "employee: created", "id", created.ID, "role", created.Role.String())
	return created, nil
}

func anyBlank(fields ...*string) bool {
	for _, f := range fields {
		if f == nil || strings.TrimSpace(*f) == "" {
			return true
		}
	}
	return false
}
