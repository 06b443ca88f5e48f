package handler

import (
	"net/http"
	"time"

	"github.com/mds-studio/mds-backend/internal/domain"
)

// ServiceRequest is the body of POST /services and PUT /services/{id}.
// A missing or null name decodes to nil and is rejected by the service layer.
type ServiceRequest struct {
	Name *string `json:"name"`
}

// ServiceResponse is the wire shape of a Service.
type ServiceResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// DeleteResponse is the body of a successful DELETE /services/{id}.
type DeleteResponse struct {
	ID int64 `json:"id"`
}

// CreateService handles POST /services.
func (s *Server) CreateService(w http.ResponseWriter, r *http.Request) {
	var body ServiceRequest
	if err := decodeBody(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.services.Create(r.Context(), derefString(body.Name))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, serviceToResponse(created))
}

// ListServices handles GET /services.
func (s *Server) ListServices(w http.ResponseWriter, r *http.Request) {
	services := s.services.List(r.Context())

	resp := make([]ServiceResponse, len(services))
	for i, svc := range services {
		resp[i] = serviceToResponse(svc)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetService handles GET /services/{id}.
func (s *Server) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, msgInvalidID)
		return
	}

	svc, err := s.services.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, serviceToResponse(svc))
}

// UpdateService handles PUT /services/{id}.
func (s *Server) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, msgInvalidID)
		return
	}
	var body ServiceRequest
	if err := decodeBody(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	updated, err := s.services.Update(r.Context(), id, derefString(body.Name))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, serviceToResponse(updated))
}

// DeleteService handles DELETE /services/{id}.
func (s *Server) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, msgInvalidID)
		return
	}

	deleted, err := s.services.Delete(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{ID: deleted})
}

// --- mapping helpers --------------------------------------------------------

func serviceToResponse(svc domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:        svc.ID,
		Name:      svc.Name,
		CreatedAt: svc.CreatedAt,
		UpdatedAt: svc.UpdatedAt,
	}
}

// derefString returns *p or "" when p is nil.
func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
