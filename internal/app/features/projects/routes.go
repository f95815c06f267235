package projects

import (
	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/auth"
)

// MountRoutes mounts the project routes on the given router. Reads are
// public; mutations need a signed-in user, with finer checks (ownership,
// role, approval) in the handlers and policies.
func (h *Handler) MountRoutes(r chi.Router, m *auth.Manager) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Group(func(r chi.Router) {
		r.Use(m.RequireSignedIn)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/apply", h.Apply)
	})
}
