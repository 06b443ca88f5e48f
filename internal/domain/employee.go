package domain

import "time"

// Employee is a staff account as read back from the store.
// It deliberately has no password field.
type Employee struct {
	ID         int64
	Name       string
	LastName   string
	MiddleName *string
	Email      string
	Role       Role
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// EmployeeInput is the registration payload as the client sent it.
// Nil means the field was absent.
type EmployeeInput struct {
	Name       *string
	LastName   *string
	MiddleName *string
	Email      *string
	Password   *string
	Role       *string
}

// NewEmployee is a validated, transformed employee ready for insertion:
// the password is already hashed and the role already decoded.
type NewEmployee struct {
	Name         string
	LastName     string
	MiddleName   *string
	Email        string
	PasswordHash string
	Role         Role
}
