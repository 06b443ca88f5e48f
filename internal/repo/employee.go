package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mds-studio/mds-backend/internal/domain"
)

// EmployeeRepo defines the persistence operations for Employees.
// Only registration exists today.
type EmployeeRepo interface {
	// Create inserts an employee with active = true and returns the stored
	// row without the password hash. A taken email wraps domain.ErrDuplicate;
	// an unknown stored role code wraps domain.ErrCorrupt.
	Create(ctx context.Context, e domain.NewEmployee) (domain.Employee, error)
}

type pgEmployeeRepo struct {
	db db
}

// NewEmployeeRepo constructs an EmployeeRepo backed by the provided db connection.
func NewEmployeeRepo(db db) EmployeeRepo {
	return &pgEmployeeRepo{db: db}
}

func (r *pgEmployeeRepo) Create(ctx context.Context, e domain.NewEmployee) (domain.Employee, error) {
	const q = `
		INSERT INTO employee (name, last_name, middle_name, email, password, role, active)
		VALUES (@name, @last_name, @middle_name, @email, @password, @role, TRUE)
		RETURNING id, name, last_name, middle_name, email, role, active, created_at, updated_at`

	args := pgx.NamedArgs{
		"name":        e.Name,
		"last_name":   e.LastName,
		"middle_name": e.MiddleName, // nil becomes NULL
		"email":       e.Email,
		"password":    e.PasswordHash,
		"role":        e.Role.Code(),
	}

	result, err := scanEmployee(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Employee{}, fmt.Errorf("repo.EmployeeRepo.Create: %w", classify(err))
	}
	return result, nil
}

// scanEmployee maps one row into a domain.Employee and decodes the role code.
func scanEmployee(s scanner) (domain.Employee, error) {
	var (
		e          domain.Employee
		middleName pgtype.Text
		roleCode   int16
		updatedAt  pgtype.Timestamptz
	)
	err := s.Scan(&e.ID, &e.Name, &e.LastName, &middleName, &e.Email, &roleCode, &e.Active, &e.CreatedAt, &updatedAt)
	if err != nil {
		return domain.Employee{}, err
	}

	role, err := domain.RoleFromCode(roleCode)
	if err != nil {
		return domain.Employee{}, err
	}
	e.Role = role

	if middleName.Valid {
		m := middleName.String
		e.MiddleName = &m
	}
	if updatedAt.Valid {
		ts := updatedAt.Time
		e.UpdatedAt = &ts
	}
	return e, nil
}
