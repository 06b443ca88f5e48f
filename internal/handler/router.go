package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes binds every endpoint to its handler. Middleware is applied by the
// caller so tests can exercise the routes bare.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Post("/services", s.CreateService)
	r.Get("/services", s.ListServices)
	r.Get("/services/{id}", s.GetService)
	r.Put("/services/{id}", s.UpdateService)
	r.Delete("/services/{id}", s.DeleteService)

	r.Post("/employee", s.CreateEmployee)

	return r
}
