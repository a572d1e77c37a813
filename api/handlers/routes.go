package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the API router, meant to be mounted at /api.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/stats", func(r chi.Router) {
		r.Post("/pair", h.Pair)
		r.Post("/alignment", h.Alignment)
		r.Post("/directory", h.Directory)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/", h.ListReports)
		r.Get("/{id}", h.GetReport)
	})

	return r
}
