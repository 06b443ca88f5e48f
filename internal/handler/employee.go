package handler

import (
	"net/http"

	"github.com/mds-studio/mds-backend/internal/domain"
)

// EmployeeRequest is the body of POST /employee.
// Pointer fields let the service layer tell an absent field from a present one.
type EmployeeRequest struct {
	Name       *string `json:"name"`
	LastName   *string `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
}

// CreateEmployee handles POST /employee. Success is 201 with no body; the
// stored record (and above all the password) is never echoed.
func (s *Server) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var body EmployeeRequest
	if err := decodeBody(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	_, err := s.employees.Create(r.Context(), domain.EmployeeInput{
		Name:       body.Name,
		LastName:   body.LastName,
		MiddleName: body.MiddleName,
		Email:      body.Email,
		Password:   body.Password,
		Role:       body.Role,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
